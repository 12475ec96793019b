package storage

import (
	"context"
	"errors"
	"mime/multipart"
)

// ErrUnsupportedFormat marks uploads rejected by the image format allow-list.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Uploader resolves an uploaded file to a publicly retrievable URL.
// Exactly one implementation is selected at startup from configuration.
type Uploader interface {
	Resolve(ctx context.Context, file *multipart.FileHeader) (string, error)
}
