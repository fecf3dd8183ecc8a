package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const entryColumns = "id, folder_id, path, parent_path, cover_art_path, title, type"

func scanEntry(row folderScanner) (*Entry, error) {
	var (
		e      Entry
		parent sql.NullString
		cover  sql.NullString
	)
	if err := row.Scan(&e.ID, &e.FolderID, &e.Path, &parent, &cover, &e.Title, &e.Type); err != nil {
		return nil, err
	}
	if parent.Valid {
		value := parent.String
		e.ParentPath = &value
	}
	if cover.Valid {
		value := cover.String
		e.CoverArtPath = &value
	}
	return &e, nil
}

// CreateEntry inserts a catalog entry. When ParentPath is nil and the entry is
// not a folder root, the parent is derived from the path's segments; the root
// entry (empty path) keeps a NULL parent.
func (s *Store) CreateEntry(ctx context.Context, e *Entry) error {
	if e.ParentPath == nil && e.Path != "" {
		parent := parentOf(e.Path)
		e.ParentPath = &parent
	}

	res, err := s.execWithRetry(ctx,
		`INSERT INTO catalog_entries (folder_id, path, parent_path, cover_art_path, title, type)
         VALUES (?, ?, ?, ?, ?, ?)`,
		e.FolderID, e.Path, stringOrNil(e.ParentPath), stringOrNil(e.CoverArtPath), e.Title, string(e.Type),
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	e.ID = id
	return nil
}

// EntryByID fetches a catalog entry by identifier, returning nil when absent.
func (s *Store) EntryByID(ctx context.Context, id int64) (*Entry, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM catalog_entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

// EntryByPath fetches the entry at the given folder-relative path, returning
// nil when absent. An empty path addresses the folder's root entry.
func (s *Store) EntryByPath(ctx context.Context, folderID int64, path string) (*Entry, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM catalog_entries WHERE folder_id = ? AND path = ?`,
		folderID, path,
	)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry by path: %w", err)
	}
	return e, nil
}

// RootEntry fetches the folder's root directory entry, returning nil when the
// folder has none.
func (s *Store) RootEntry(ctx context.Context, folderID int64) (*Entry, error) {
	return s.EntryByPath(ctx, folderID, "")
}

// EntriesInFolder returns every entry owned by the folder ordered by path.
func (s *Store) EntriesInFolder(ctx context.Context, folderID int64) ([]Entry, error) {
	return s.queryEntries(ctx,
		`SELECT `+entryColumns+` FROM catalog_entries WHERE folder_id = ? ORDER BY path`,
		folderID,
	)
}

// ChildrenOf returns the entries whose parent is the given folder-relative
// directory path, ordered by path.
func (s *Store) ChildrenOf(ctx context.Context, folderID int64, parentPath string) ([]Entry, error) {
	return s.queryEntries(ctx,
		`SELECT `+entryColumns+` FROM catalog_entries WHERE folder_id = ? AND parent_path = ? ORDER BY path`,
		folderID, parentPath,
	)
}

func (s *Store) queryEntries(ctx context.Context, query string, args ...any) ([]Entry, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}
