package storage

import (
	"context"
	"io"
)

// MediaStore abstracts where uploaded module media and avatars live.
// References are opaque strings; URL turns one into something a client
// can fetch.
type MediaStore interface {
	Save(ctx context.Context, r io.Reader, size int64, filename, contentType string) (string, error)
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}
