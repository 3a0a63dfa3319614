package database

import "errors"

var ErrNilImage = errors.New("image must not be nil")

type DatabaseService interface {
	// CreateImage stores a copy of image under a freshly generated ID and returns the stored record.
	// Any ID already set on image is ignored.
	CreateImage(image *Image) (*Image, error)
	// DeleteImage removes the image with the given ID. Unknown IDs are not an error.
	DeleteImage(id string) error
	DeleteAllImages() error
	// GetAllImages returns all images in insertion order.
	GetAllImages() ([]*Image, error)
	Count() (int, error)
	Close() error
}
