package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const folderColumns = "id, path, name, type, enabled, changed"

type folderScanner interface {
	Scan(dest ...any) error
}

func scanFolder(row folderScanner) (*Folder, error) {
	var (
		f       Folder
		enabled int
		changed string
	)
	if err := row.Scan(&f.ID, &f.Path, &f.Name, &f.Type, &enabled, &changed); err != nil {
		return nil, err
	}
	f.Enabled = enabled != 0
	ts, err := timeFromStamp(changed)
	if err != nil {
		return nil, err
	}
	f.Changed = ts
	return &f, nil
}

// CreateFolder registers a new folder and grants it to every existing user,
// all inside one transaction. Creating a folder whose absolute path is
// already registered is an idempotent no-op, not an error; in that case the
// existing folder's ID is written back to f.
func (s *Store) CreateFolder(ctx context.Context, f *Folder) error {
	ctx = ensureContext(ctx)
	if f.Changed.IsZero() {
		f.Changed = time.Now().UTC()
	}

	return s.WithTx(ctx, func(tx *sql.Tx) error {
		existing, err := folderByPathTx(ctx, tx, f.Path)
		if err != nil {
			return err
		}
		if existing != nil {
			f.ID = existing.ID
			return nil
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO folders (path, name, type, enabled, changed) VALUES (?, ?, ?, ?, ?)`,
			f.Path, f.Name, string(f.Type), boolToInt(f.Enabled), f.Changed.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert folder: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		f.ID = id

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO folder_grants (folder_id, username) SELECT ?, username FROM users`,
			id,
		); err != nil {
			return fmt.Errorf("grant folder to users: %w", err)
		}
		return nil
	})
}

// DeleteFolder removes the folder row unconditionally. Catalog entries and
// grants that still reference the folder are left in place; cleaning them up
// is the caller's responsibility.
func (s *Store) DeleteFolder(ctx context.Context, id int64) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM folders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	return nil
}

// UpdateFolder performs a full-row update of the folder identified by f.ID.
func (s *Store) UpdateFolder(ctx context.Context, f Folder) error {
	if _, err := s.execWithRetry(ctx,
		`UPDATE folders SET path = ?, name = ?, type = ?, enabled = ?, changed = ? WHERE id = ?`,
		f.Path, f.Name, string(f.Type), boolToInt(f.Enabled), f.Changed.UTC().Format(time.RFC3339Nano), f.ID,
	); err != nil {
		return fmt.Errorf("update folder: %w", err)
	}
	return nil
}

// Folders returns every registered folder ordered by id.
func (s *Store) Folders(ctx context.Context) ([]Folder, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `SELECT `+folderColumns+` FROM folders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query folders: %w", err)
	}
	defer rows.Close()

	var folders []Folder
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}
	return folders, nil
}

// FolderByID fetches a folder by identifier, returning nil when absent.
func (s *Store) FolderByID(ctx context.Context, id int64) (*Folder, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+folderColumns+` FROM folders WHERE id = ?`, id)
	f, err := scanFolder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get folder: %w", err)
	}
	return f, nil
}

// FolderByPath fetches the folder registered at the given absolute path,
// returning nil when absent.
func (s *Store) FolderByPath(ctx context.Context, path string) (*Folder, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+folderColumns+` FROM folders WHERE path = ?`, path)
	f, err := scanFolder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get folder by path: %w", err)
	}
	return f, nil
}

func folderByPathTx(ctx context.Context, tx *sql.Tx, path string) (*Folder, error) {
	row := tx.QueryRowContext(ctx, `SELECT `+folderColumns+` FROM folders WHERE path = ?`, path)
	f, err := scanFolder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get folder by path: %w", err)
	}
	return f, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
