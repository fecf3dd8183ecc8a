package catalog

import (
	"errors"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks the folder's user-supplied fields before registration or
// update. The store itself trusts its callers; validation belongs at the
// admin surface.
func (f Folder) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Path, validation.Required, validation.By(absolutePath)),
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Type, validation.Required, validation.In(FolderMedia, FolderPodcast)),
	)
}

// Validate checks an entry's user-supplied fields. Root entries (empty path)
// are created by the registry, not through this surface, so a path is
// required here.
func (e Entry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Path, validation.Required, validation.By(relativePath)),
		validation.Field(&e.Type, validation.Required,
			validation.In(TypeMusic, TypePodcast, TypeAudiobook, TypeVideo, TypeDirectory)),
	)
}

func absolutePath(value interface{}) error {
	path, _ := value.(string)
	if !filepath.IsAbs(path) {
		return errors.New("must be an absolute path")
	}
	return nil
}

func relativePath(value interface{}) error {
	path, _ := value.(string)
	if path == "" {
		return nil
	}
	if filepath.IsAbs(path) {
		return errors.New("must be relative to the owning folder")
	}
	return nil
}
