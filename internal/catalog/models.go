package catalog

import (
	"strings"
	"time"
)

// FolderType distinguishes regular media folders from podcast folders.
type FolderType string

const (
	FolderMedia   FolderType = "MEDIA"
	FolderPodcast FolderType = "PODCAST"
)

var folderTypeSet = map[FolderType]struct{}{
	FolderMedia:   {},
	FolderPodcast: {},
}

// ParseFolderType maps a user-supplied string to a FolderType.
func ParseFolderType(value string) (FolderType, bool) {
	ft := FolderType(strings.ToUpper(strings.TrimSpace(value)))
	_, ok := folderTypeSet[ft]
	return ft, ok
}

// MediaType classifies a catalog entry.
type MediaType string

const (
	TypeMusic     MediaType = "MUSIC"
	TypePodcast   MediaType = "PODCAST"
	TypeAudiobook MediaType = "AUDIOBOOK"
	TypeVideo     MediaType = "VIDEO"
	TypeDirectory MediaType = "DIRECTORY"
)

var mediaTypeSet = map[MediaType]struct{}{
	TypeMusic:     {},
	TypePodcast:   {},
	TypeAudiobook: {},
	TypeVideo:     {},
	TypeDirectory: {},
}

// ParseMediaType maps a user-supplied string to a MediaType.
func ParseMediaType(value string) (MediaType, bool) {
	mt := MediaType(strings.ToUpper(strings.TrimSpace(value)))
	_, ok := mediaTypeSet[mt]
	return mt, ok
}

// Folder is a registered root directory exposing a slice of the catalog.
// Path is absolute and unique across folders; uniqueness is enforced by the
// registry, not the database.
type Folder struct {
	ID      int64
	Path    string
	Name    string
	Type    FolderType
	Enabled bool
	Changed time.Time
}

// Entry is a media file or directory owned by exactly one folder.
//
// Path and ParentPath are relative to the owning folder's root. The root
// directory entry has an empty Path and a nil ParentPath. CoverArtPath, when
// set, follows the same relativity rules as Path and is rewritten under the
// same prefix transformation during reassignment.
type Entry struct {
	ID           int64
	FolderID     int64
	Path         string
	ParentPath   *string
	CoverArtPath *string
	Title        string
	Type         MediaType
}

// IsRoot reports whether the entry is its folder's root directory marker.
func (e Entry) IsRoot() bool {
	return e.Path == ""
}
