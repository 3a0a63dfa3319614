package database

// Image is a single uploaded image as it is kept by a DatabaseService.
type Image struct {
	ID           string
	Data         string // inline data string: data:<mime>;base64,<payload>
	CreatedAt    string // human readable creation timestamp
	OriginalName string
	Size         int64  // byte length of the original upload
	Type         string // MIME type, always image/*
}

func (image *Image) clone() *Image {
	copied := *image
	return &copied
}
