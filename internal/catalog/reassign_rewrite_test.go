package catalog

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func sampleFolders() (Folder, Folder) {
	ancestor := Folder{ID: 1, Path: "/music", Name: "Music", Type: FolderMedia, Enabled: true}
	descendant := Folder{ID: 2, Path: "/music/jazz", Name: "jazz", Type: FolderMedia, Enabled: true}
	return ancestor, descendant
}

func TestPromoteRewriteChild(t *testing.T) {
	_, descendant := sampleFolders()

	entry := Entry{
		ID:           10,
		FolderID:     1,
		Path:         "jazz/miles.mp3",
		ParentPath:   strPtr("jazz"),
		CoverArtPath: strPtr("jazz/cover.jpg"),
		Title:        "So What",
		Type:         TypeMusic,
	}

	got, ok := promoteRewrite(descendant, "jazz", entry)
	if !ok {
		t.Fatal("expected entry under the subtree to be affected")
	}
	if got.FolderID != 2 {
		t.Fatalf("folder id = %d, want 2", got.FolderID)
	}
	if got.Path != "miles.mp3" {
		t.Fatalf("path = %q, want miles.mp3", got.Path)
	}
	if got.ParentPath == nil || *got.ParentPath != "" {
		t.Fatalf("parent = %v, want empty string", got.ParentPath)
	}
	if got.CoverArtPath == nil || *got.CoverArtPath != "cover.jpg" {
		t.Fatalf("cover = %v, want cover.jpg", got.CoverArtPath)
	}
	if got.Title != "So What" || got.Type != TypeMusic {
		t.Fatalf("title/type must not change for non-root entries: %q %q", got.Title, got.Type)
	}
}

func TestPromoteRewriteDeepChildKeepsParentChain(t *testing.T) {
	_, descendant := sampleFolders()

	entry := Entry{
		FolderID:   1,
		Path:       "jazz/miles/kind-of-blue/01.flac",
		ParentPath: strPtr("jazz/miles/kind-of-blue"),
		Type:       TypeMusic,
	}

	got, ok := promoteRewrite(descendant, "jazz", entry)
	if !ok {
		t.Fatal("expected entry to be affected")
	}
	if got.Path != "miles/kind-of-blue/01.flac" {
		t.Fatalf("path = %q", got.Path)
	}
	if got.ParentPath == nil || *got.ParentPath != "miles/kind-of-blue" {
		t.Fatalf("parent = %v", got.ParentPath)
	}
}

func TestPromoteRewriteSubtreeRoot(t *testing.T) {
	_, descendant := sampleFolders()

	entry := Entry{
		FolderID:     1,
		Path:         "jazz",
		ParentPath:   strPtr(""),
		CoverArtPath: strPtr("jazz/cover.jpg"),
		Title:        "jazz",
		Type:         TypeDirectory,
	}

	got, ok := promoteRewrite(descendant, "jazz", entry)
	if !ok {
		t.Fatal("expected subtree root to be affected")
	}
	if got.Path != "" {
		t.Fatalf("path = %q, want empty", got.Path)
	}
	if got.ParentPath != nil {
		t.Fatalf("parent = %v, want nil", got.ParentPath)
	}
	if got.Title != descendant.Name {
		t.Fatalf("title = %q, want %q", got.Title, descendant.Name)
	}
	if got.Type != TypeDirectory {
		t.Fatalf("type = %q, want DIRECTORY", got.Type)
	}
	if got.CoverArtPath == nil || *got.CoverArtPath != "cover.jpg" {
		t.Fatalf("cover = %v, want cover.jpg", got.CoverArtPath)
	}
}

func TestPromoteRewriteLeavesOutsiders(t *testing.T) {
	_, descendant := sampleFolders()

	outsiders := []Entry{
		{FolderID: 1, Path: "", Type: TypeDirectory},
		{FolderID: 1, Path: "rock/track.flac", ParentPath: strPtr("rock"), Type: TypeMusic},
		{FolderID: 1, Path: "jazzy/track.flac", ParentPath: strPtr("jazzy"), Type: TypeMusic},
	}
	for _, e := range outsiders {
		if _, ok := promoteRewrite(descendant, "jazz", e); ok {
			t.Fatalf("entry %q must not be affected by promoting jazz", e.Path)
		}
	}
}

func TestFoldRewriteRoot(t *testing.T) {
	ancestor, _ := sampleFolders()

	entry := Entry{
		FolderID:     2,
		Path:         "",
		ParentPath:   nil,
		CoverArtPath: strPtr("cover.jpg"),
		Title:        "jazz",
		Type:         TypeDirectory,
	}

	got := foldRewrite(ancestor, "jazz", entry)
	if got.FolderID != 1 {
		t.Fatalf("folder id = %d, want 1", got.FolderID)
	}
	if got.Path != "jazz" {
		t.Fatalf("path = %q, want jazz", got.Path)
	}
	if got.ParentPath == nil || *got.ParentPath != "" {
		t.Fatalf("parent = %v, want empty string", got.ParentPath)
	}
	if got.CoverArtPath == nil || *got.CoverArtPath != "jazz/cover.jpg" {
		t.Fatalf("cover = %v, want jazz/cover.jpg", got.CoverArtPath)
	}
}

func TestFoldRewriteRootWithMultiSegmentRel(t *testing.T) {
	ancestor := Folder{ID: 1, Path: "/srv/media"}

	entry := Entry{FolderID: 2, Path: "", Type: TypeDirectory}
	got := foldRewrite(ancestor, "music/jazz", entry)
	if got.Path != "music/jazz" {
		t.Fatalf("path = %q", got.Path)
	}
	if got.ParentPath == nil || *got.ParentPath != "music" {
		t.Fatalf("parent = %v, want music", got.ParentPath)
	}
}

func TestFoldRewriteChildren(t *testing.T) {
	ancestor, _ := sampleFolders()

	direct := Entry{
		FolderID:     2,
		Path:         "miles.mp3",
		ParentPath:   strPtr(""),
		CoverArtPath: strPtr("cover.jpg"),
		Type:         TypeMusic,
	}
	got := foldRewrite(ancestor, "jazz", direct)
	if got.Path != "jazz/miles.mp3" {
		t.Fatalf("path = %q", got.Path)
	}
	if got.ParentPath == nil || *got.ParentPath != "jazz" {
		t.Fatalf("parent of direct child = %v, want jazz", got.ParentPath)
	}
	if got.CoverArtPath == nil || *got.CoverArtPath != "jazz/cover.jpg" {
		t.Fatalf("cover = %v", got.CoverArtPath)
	}

	nested := Entry{
		FolderID:   2,
		Path:       "miles/kind-of-blue/01.flac",
		ParentPath: strPtr("miles/kind-of-blue"),
		Type:       TypeMusic,
	}
	got = foldRewrite(ancestor, "jazz", nested)
	if got.Path != "jazz/miles/kind-of-blue/01.flac" {
		t.Fatalf("nested path = %q", got.Path)
	}
	if got.ParentPath == nil || *got.ParentPath != "jazz/miles/kind-of-blue" {
		t.Fatalf("nested parent = %v", got.ParentPath)
	}
}

func TestRewriteRoundTrip(t *testing.T) {
	ancestor, descendant := sampleFolders()

	originals := []Entry{
		{FolderID: 1, Path: "jazz", ParentPath: strPtr(""), CoverArtPath: strPtr("jazz/cover.jpg"), Title: "jazz", Type: TypeDirectory},
		{FolderID: 1, Path: "jazz/miles.mp3", ParentPath: strPtr("jazz"), CoverArtPath: strPtr("jazz/cover.jpg"), Title: "So What", Type: TypeMusic},
		{FolderID: 1, Path: "jazz/miles/01.flac", ParentPath: strPtr("jazz/miles"), Type: TypeMusic},
	}

	promoted, err := PreviewReassign(ancestor, descendant, originals)
	if err != nil {
		t.Fatalf("PreviewReassign promote: %v", err)
	}
	if len(promoted) != len(originals) {
		t.Fatalf("promoted %d entries, want %d", len(promoted), len(originals))
	}

	folded, err := PreviewReassign(descendant, ancestor, promoted)
	if err != nil {
		t.Fatalf("PreviewReassign fold: %v", err)
	}
	if len(folded) != len(originals) {
		t.Fatalf("folded %d entries, want %d", len(folded), len(originals))
	}

	for i, got := range folded {
		want := originals[i]
		if got.FolderID != want.FolderID {
			t.Fatalf("entry %d folder id = %d, want %d", i, got.FolderID, want.FolderID)
		}
		if got.Path != want.Path {
			t.Fatalf("entry %d path = %q, want %q", i, got.Path, want.Path)
		}
		if (got.ParentPath == nil) != (want.ParentPath == nil) ||
			(got.ParentPath != nil && *got.ParentPath != *want.ParentPath) {
			t.Fatalf("entry %d parent = %v, want %v", i, got.ParentPath, want.ParentPath)
		}
		if (got.CoverArtPath == nil) != (want.CoverArtPath == nil) ||
			(got.CoverArtPath != nil && *got.CoverArtPath != *want.CoverArtPath) {
			t.Fatalf("entry %d cover = %v, want %v", i, got.CoverArtPath, want.CoverArtPath)
		}
	}
}

func TestPreviewReassignRejectsUnrelatedFolders(t *testing.T) {
	music := Folder{ID: 1, Path: "/music"}
	daily := Folder{ID: 2, Path: "/podcasts/daily"}

	if _, err := PreviewReassign(music, daily, nil); !errors.Is(err, ErrNotNested) {
		t.Fatalf("expected ErrNotNested, got %v", err)
	}
	if _, err := PreviewReassign(daily, music, nil); !errors.Is(err, ErrNotNested) {
		t.Fatalf("expected ErrNotNested for reverse pair, got %v", err)
	}
}

func TestPreviewReassignSkipsOtherFolders(t *testing.T) {
	ancestor, descendant := sampleFolders()

	entries := []Entry{
		{FolderID: 1, Path: "jazz/miles.mp3", ParentPath: strPtr("jazz"), Type: TypeMusic},
		{FolderID: 99, Path: "jazz/other.mp3", ParentPath: strPtr("jazz"), Type: TypeMusic},
	}
	preview, err := PreviewReassign(ancestor, descendant, entries)
	if err != nil {
		t.Fatalf("PreviewReassign: %v", err)
	}
	if len(preview) != 1 {
		t.Fatalf("preview has %d entries, want 1", len(preview))
	}
	if preview[0].Path != "miles.mp3" {
		t.Fatalf("preview path = %q", preview[0].Path)
	}
}
