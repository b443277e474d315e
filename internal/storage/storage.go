package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded song files land. Upload returns the
// public URL the stored file is served from.
type FileStorage interface {
	Upload(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
