package testsupport

import (
	"context"
	"testing"
	"time"

	"tonearm/internal/catalog"
	"tonearm/internal/config"
)

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MustCreateFolder registers a media folder for tests using the provided store.
func MustCreateFolder(t testing.TB, store *catalog.Store, path, name string) *catalog.Folder {
	t.Helper()

	folder := &catalog.Folder{
		Path:    path,
		Name:    name,
		Type:    catalog.FolderMedia,
		Enabled: true,
		Changed: time.Now().UTC(),
	}
	if err := store.CreateFolder(context.Background(), folder); err != nil {
		t.Fatalf("store.CreateFolder: %v", err)
	}
	return folder
}

// SeedEntry inserts a catalog entry for tests. The parent path is derived
// from the entry path unless the entry is a folder root.
func SeedEntry(t testing.TB, store *catalog.Store, folderID int64, path, title string, mediaType catalog.MediaType) *catalog.Entry {
	t.Helper()

	entry := &catalog.Entry{
		FolderID: folderID,
		Path:     path,
		Title:    title,
		Type:     mediaType,
	}
	if err := store.CreateEntry(context.Background(), entry); err != nil {
		t.Fatalf("store.CreateEntry: %v", err)
	}
	return entry
}

// SeedEntryWithCover inserts a catalog entry carrying a cover art path.
func SeedEntryWithCover(t testing.TB, store *catalog.Store, folderID int64, path, cover, title string, mediaType catalog.MediaType) *catalog.Entry {
	t.Helper()

	entry := &catalog.Entry{
		FolderID:     folderID,
		Path:         path,
		CoverArtPath: &cover,
		Title:        title,
		Type:         mediaType,
	}
	if err := store.CreateEntry(context.Background(), entry); err != nil {
		t.Fatalf("store.CreateEntry: %v", err)
	}
	return entry
}
