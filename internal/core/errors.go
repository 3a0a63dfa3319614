package core

import "errors"

var (
	ErrMissingFile = errors.New("image file is required")
	ErrInvalidType = errors.New("only image files can be uploaded")
)
