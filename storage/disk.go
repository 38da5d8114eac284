package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore keeps media on the local filesystem under a single
// directory that the HTTP layer serves statically.
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DiskStore{Dir: dir, BaseURL: baseURL}, nil
}

func (s *DiskStore) Save(_ context.Context, r io.Reader, _ int64, filename, _ string) (string, error) {
	ext := filepath.Ext(filename)
	ref := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.Dir, ref))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}

	return ref, nil
}

func (s *DiskStore) Delete(_ context.Context, ref string) error {
	// Refs are bare filenames; Base strips any path a caller smuggled in
	return os.Remove(filepath.Join(s.Dir, filepath.Base(ref)))
}

func (s *DiskStore) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return s.BaseURL + "/" + ref
}
