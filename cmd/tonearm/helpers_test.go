package main

import (
	"strings"
	"testing"
	"time"
)

func TestDeriveFolderName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/srv/media/music", "Music"},
		{"/srv/media/audio-books", "Audio Books"},
		{"/srv/media/my_podcasts/", "My Podcasts"},
		{"C:\\Media\\Live Sets", "Live Sets"},
		{"/srv/media/classical.archive", "Classical Archive"},
		{"/", "Media"},
	}
	for _, tc := range cases {
		if got := deriveFolderName(tc.path); got != tc.want {
			t.Errorf("deriveFolderName(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestParseFolderIDs(t *testing.T) {
	ids, err := parseFolderIDs([]string{"1", " 42", "7"})
	if err != nil {
		t.Fatalf("parseFolderIDs: %v", err)
	}
	want := []int64{1, 42, 7}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}

	if _, err := parseFolderIDs([]string{"1", "music"}); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}

func TestRenderPlain(t *testing.T) {
	out := renderPlain(
		[]string{"ID", "PATH"},
		[][]string{{"1", "/music"}, {"2", "/podcasts"}},
	)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "ID\tPATH" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[2] != "2\t/podcasts" {
		t.Fatalf("row = %q", lines[2])
	}
}

func TestOrDash(t *testing.T) {
	if got := orDash(nil); got != "-" {
		t.Fatalf("orDash(nil) = %q", got)
	}
	empty := ""
	if got := orDash(&empty); got != `""` {
		t.Fatalf("orDash(empty) = %q", got)
	}
	value := "jazz/cover.jpg"
	if got := orDash(&value); got != "jazz/cover.jpg" {
		t.Fatalf("orDash = %q", got)
	}
}

func TestFormatTime(t *testing.T) {
	if got := formatTime(time.Time{}); got != "-" {
		t.Fatalf("formatTime(zero) = %q", got)
	}
	ts := time.Date(2026, 2, 3, 9, 30, 0, 0, time.UTC)
	if got := formatTime(ts); got != "2026-02-03 09:30" {
		t.Fatalf("formatTime = %q", got)
	}
}
