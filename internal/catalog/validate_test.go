package catalog

import (
	"testing"
	"time"
)

func validFolder() Folder {
	return Folder{
		Path:    "/srv/media/music",
		Name:    "Music",
		Type:    FolderMedia,
		Enabled: true,
		Changed: time.Now().UTC(),
	}
}

func TestFolderValidate(t *testing.T) {
	if err := validFolder().Validate(); err != nil {
		t.Fatalf("valid folder rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Folder)
	}{
		{"empty path", func(f *Folder) { f.Path = "" }},
		{"relative path", func(f *Folder) { f.Path = "media/music" }},
		{"empty name", func(f *Folder) { f.Name = "" }},
		{"unknown type", func(f *Folder) { f.Type = FolderType("SHELF") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validFolder()
			tc.mutate(&f)
			if err := f.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestEntryValidate(t *testing.T) {
	valid := Entry{FolderID: 1, Path: "jazz/track.mp3", Title: "Track", Type: TypeMusic}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	cases := []struct {
		name  string
		entry Entry
	}{
		{"empty path", Entry{FolderID: 1, Type: TypeMusic}},
		{"absolute path", Entry{FolderID: 1, Path: "/etc/passwd", Type: TypeMusic}},
		{"unknown type", Entry{FolderID: 1, Path: "a.mp3", Type: MediaType("IMAGE")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.entry.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestParseFolderType(t *testing.T) {
	if got, ok := ParseFolderType("media"); !ok || got != FolderMedia {
		t.Fatalf("ParseFolderType(media) = %v, %v", got, ok)
	}
	if got, ok := ParseFolderType(" PODCAST "); !ok || got != FolderPodcast {
		t.Fatalf("ParseFolderType(PODCAST) = %v, %v", got, ok)
	}
	if _, ok := ParseFolderType("shelf"); ok {
		t.Fatal("accepted unknown folder type")
	}
}

func TestParseMediaType(t *testing.T) {
	if got, ok := ParseMediaType("music"); !ok || got != TypeMusic {
		t.Fatalf("ParseMediaType(music) = %v, %v", got, ok)
	}
	if got, ok := ParseMediaType("DIRECTORY"); !ok || got != TypeDirectory {
		t.Fatalf("ParseMediaType(DIRECTORY) = %v, %v", got, ok)
	}
	if _, ok := ParseMediaType("image"); ok {
		t.Fatal("accepted unknown media type")
	}
}
