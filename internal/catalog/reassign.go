package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotNested reports a reassignment request between two folders whose
// absolute paths are not in an ancestor/descendant relationship.
var ErrNotNested = errors.New("folder paths are not nested")

// Reassign migrates ownership of the catalog subtree shared by two folders
// related by filesystem nesting. The shallower folder is the ancestor; when
// the deeper folder is the target the subtree is promoted out of the ancestor
// to become the target's own catalog, and when the shallower folder is the
// target the source folder's whole catalog is folded back under it.
//
// Direction follows from the segment depth of the two absolute paths, but
// the chosen ancestor's path must actually contain the descendant's;
// unrelated pairs fail with ErrNotNested before anything is written.
//
// Both bulk updates of a direction run on the supplied transaction. Reassign
// never commits or rolls back: callers own the atomicity boundary and must
// not run overlapping reassignments concurrently.
func (s *Store) Reassign(ctx context.Context, tx *sql.Tx, from, to Folder) error {
	ctx = ensureContext(ctx)
	if pathDepth(to.Path) > pathDepth(from.Path) {
		rel, ok := relativeTo(from.Path, to.Path)
		if !ok {
			return fmt.Errorf("promote %q out of %q: %w", to.Path, from.Path, ErrNotNested)
		}
		return promoteSubtree(ctx, tx, from, to, rel)
	}
	rel, ok := relativeTo(to.Path, from.Path)
	if !ok {
		return fmt.Errorf("fold %q into %q: %w", from.Path, to.Path, ErrNotNested)
	}
	return foldSubtree(ctx, tx, from, to, rel)
}

// promoteSubtree moves every entry physically under the descendant's mount
// point from the ancestor to the descendant, re-rooting their relative paths.
// The directory entry that used to represent the subtree becomes the
// descendant's root entry.
func promoteSubtree(ctx context.Context, tx *sql.Tx, ancestor, descendant Folder, rel string) error {
	prefix := rel + separator

	// Entries strictly under the subtree: strip the prefix from path and
	// cover art. A parent equal to rel itself collapses to the new root.
	if _, err := tx.ExecContext(ctx,
		`UPDATE catalog_entries SET
            folder_id = ?,
            path = SUBSTR(path, LENGTH(?) + 1),
            cover_art_path = SUBSTR(cover_art_path, LENGTH(?) + 1),
            parent_path = CASE
                WHEN LENGTH(parent_path) >= LENGTH(?) THEN SUBSTR(parent_path, LENGTH(?) + 1)
                ELSE ''
            END
         WHERE folder_id = ? AND SUBSTR(path, 1, LENGTH(?)) = ?`,
		descendant.ID, prefix, prefix, prefix, prefix, ancestor.ID, prefix, prefix,
	); err != nil {
		return fmt.Errorf("promote subtree entries: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE catalog_entries SET
            folder_id = ?,
            path = '',
            parent_path = NULL,
            cover_art_path = SUBSTR(cover_art_path, LENGTH(?) + 1),
            title = ?,
            type = ?
         WHERE folder_id = ? AND path = ?`,
		descendant.ID, prefix, descendant.Name, string(TypeDirectory), ancestor.ID, rel,
	); err != nil {
		return fmt.Errorf("promote subtree root: %w", err)
	}
	return nil
}

// foldSubtree re-namespaces the descendant folder's whole catalog under the
// ancestor, as if it had always been a subdirectory of it. The descendant's
// root entry becomes a regular directory entry at rel.
func foldSubtree(ctx context.Context, tx *sql.Tx, descendant, ancestor Folder, rel string) error {
	prefix := rel + separator

	// Root entry first: it gains a concrete path, so the catch-all child
	// update below no longer matches it.
	if _, err := tx.ExecContext(ctx,
		`UPDATE catalog_entries SET
            folder_id = ?,
            path = ?,
            parent_path = ?,
            cover_art_path = ? || cover_art_path
         WHERE folder_id = ? AND path = ''`,
		ancestor.ID, rel, parentOf(rel), prefix, descendant.ID,
	); err != nil {
		return fmt.Errorf("fold subtree root: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE catalog_entries SET
            folder_id = ?,
            path = ? || path,
            parent_path = CASE WHEN parent_path = '' THEN ? ELSE ? || parent_path END,
            cover_art_path = ? || cover_art_path
         WHERE folder_id = ?`,
		ancestor.ID, prefix, rel, prefix, prefix, descendant.ID,
	); err != nil {
		return fmt.Errorf("fold subtree entries: %w", err)
	}
	return nil
}

// PreviewReassign computes the affected entries of a reassignment between the
// two folders without touching the store, choosing the direction exactly as
// Reassign does. Entries not owned by the source folder, or outside the moved
// subtree, are omitted from the result.
func PreviewReassign(from, to Folder, entries []Entry) ([]Entry, error) {
	if pathDepth(to.Path) > pathDepth(from.Path) {
		rel, ok := relativeTo(from.Path, to.Path)
		if !ok {
			return nil, fmt.Errorf("promote %q out of %q: %w", to.Path, from.Path, ErrNotNested)
		}
		var rewritten []Entry
		for _, e := range entries {
			if e.FolderID != from.ID {
				continue
			}
			if moved, ok := promoteRewrite(to, rel, e); ok {
				rewritten = append(rewritten, moved)
			}
		}
		return rewritten, nil
	}

	rel, ok := relativeTo(to.Path, from.Path)
	if !ok {
		return nil, fmt.Errorf("fold %q into %q: %w", from.Path, to.Path, ErrNotNested)
	}
	var rewritten []Entry
	for _, e := range entries {
		if e.FolderID != from.ID {
			continue
		}
		rewritten = append(rewritten, foldRewrite(to, rel, e))
	}
	return rewritten, nil
}

// promoteRewrite is the per-entry form of the promotion direction: entries
// under rel move to the descendant folder with the rel prefix stripped, and
// the entry at rel itself becomes the descendant's root. It reports false for
// entries outside the subtree.
func promoteRewrite(descendant Folder, rel string, e Entry) (Entry, bool) {
	relSegs := splitSegments(rel)

	if e.Path == rel {
		e.FolderID = descendant.ID
		e.Path = ""
		e.ParentPath = nil
		e.Title = descendant.Name
		e.Type = TypeDirectory
		e.CoverArtPath = stripCover(e.CoverArtPath, relSegs)
		return e, true
	}

	stripped, ok := stripSegmentPrefix(e.Path, relSegs)
	if !ok || stripped == "" {
		return e, false
	}

	e.FolderID = descendant.ID
	e.Path = stripped
	if e.ParentPath != nil {
		// A parent equal to rel strips to the empty string: the entry now
		// hangs directly off the new folder's root.
		if parent, ok := stripSegmentPrefix(*e.ParentPath, relSegs); ok {
			e.ParentPath = &parent
		}
	}
	e.CoverArtPath = stripCover(e.CoverArtPath, relSegs)
	return e, true
}

// foldRewrite is the per-entry form of the folding direction: every entry of
// the descendant folder is re-namespaced under rel inside the ancestor. The
// descendant's root entry becomes the directory entry at rel.
func foldRewrite(ancestor Folder, rel string, e Entry) Entry {
	e.FolderID = ancestor.ID

	if e.IsRoot() {
		e.Path = rel
		parent := parentOf(rel)
		e.ParentPath = &parent
		e.CoverArtPath = joinCover(e.CoverArtPath, rel)
		return e
	}

	e.Path = joinRel(rel, e.Path)
	if e.ParentPath != nil {
		parent := rel
		if *e.ParentPath != "" {
			parent = joinRel(rel, *e.ParentPath)
		}
		e.ParentPath = &parent
	}
	e.CoverArtPath = joinCover(e.CoverArtPath, rel)
	return e
}

func stripCover(cover *string, relSegs []string) *string {
	if cover == nil {
		return nil
	}
	stripped, ok := stripSegmentPrefix(*cover, relSegs)
	if !ok {
		return cover
	}
	return &stripped
}

func joinCover(cover *string, rel string) *string {
	if cover == nil {
		return nil
	}
	joined := joinRel(rel, *cover)
	return &joined
}
