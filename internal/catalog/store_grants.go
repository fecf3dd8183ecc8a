package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateUser registers a username as a grant target. Registering an existing
// username is a no-op. New users receive no folder grants; granting them is
// an external responsibility.
func (s *Store) CreateUser(ctx context.Context, username string) error {
	if _, err := s.execWithRetry(ctx,
		`INSERT OR IGNORE INTO users (username) VALUES (?)`, username,
	); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Usernames returns every registered username ordered alphabetically.
func (s *Store) Usernames(ctx context.Context) ([]string, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `SELECT username FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return names, nil
}

// FoldersForUser returns the folders visible to the given user, ordered by
// folder id. Visibility is exactly membership in the grant table.
func (s *Store) FoldersForUser(ctx context.Context, username string) ([]Folder, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT f.id, f.path, f.name, f.type, f.enabled, f.changed
         FROM folders f
         JOIN folder_grants g ON g.folder_id = f.id
         WHERE g.username = ?
         ORDER BY f.id`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("query folders for user: %w", err)
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

// SetFoldersForUser replaces the user's folder grants with exactly the given
// folder ids. The delete and the re-inserts run in one transaction so a
// failure cannot leave the user with an empty grant set.
func (s *Store) SetFoldersForUser(ctx context.Context, username string, folderIDs []int64) error {
	ctx = ensureContext(ctx)
	return s.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM folder_grants WHERE username = ?`, username,
		); err != nil {
			return fmt.Errorf("clear grants: %w", err)
		}
		for _, id := range folderIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO folder_grants (folder_id, username) VALUES (?, ?)`,
				id, username,
			); err != nil {
				return fmt.Errorf("grant folder %d: %w", id, err)
			}
		}
		return nil
	})
}
