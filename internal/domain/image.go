package domain

import (
	"errors"
	"image"
)

var (
	// ErrImageNotFound indicates that the image is not found.
	ErrImageNotFound = errors.New("image not found")
	// ErrImageNotSaved indicates an operation that requires a persisted image.
	ErrImageNotSaved = errors.New("image not saved")
	// ErrImageNotEditable indicates that the image carries no raw bitmap to render from.
	ErrImageNotEditable = errors.New("image not editable")
	// ErrImageDecoding indicates a malformed image upload payload.
	ErrImageDecoding = errors.New("image decoding failed")
)

// Image holds the three rendered paths of a persisted image. The raw bitmap
// is only present on a fresh upload and is never persisted; a saved image
// and an editable image are mutually exclusive states.
type Image struct {
	ID        int64  `json:"id"`
	Original  string `json:"original"`
	Preview   string `json:"preview"`
	Thumbnail string `json:"thumbnail"`

	Raw image.Image `json:"-"`
}

// IsSaved reports whether the image has been persisted with all renditions.
func (i Image) IsSaved() bool {
	return i.ID != 0 && i.Original != "" && i.Preview != "" && i.Thumbnail != ""
}

// IsEditable reports whether the image still carries its raw bitmap.
func (i Image) IsEditable() bool {
	return i.Raw != nil
}
