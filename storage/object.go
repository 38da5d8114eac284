package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"skillup/config"
)

// ObjectStore keeps media in an S3-compatible bucket.
type ObjectStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewObjectStore(cfg *config.Config) (*ObjectStore, error) {
	endpoint := cfg.S3Endpoint
	useSSL := false

	if strings.HasPrefix(endpoint, "http") {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("parse endpoint: %w", err)
		}
		endpoint = u.Host
		useSSL = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: useSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}

	s := &ObjectStore{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: cfg.S3PublicURL,
	}

	if err := s.ensureBucket(context.Background(), cfg.S3Region); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *ObjectStore) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("bucket exists %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("create bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

func (s *ObjectStore) Save(ctx context.Context, r io.Reader, size int64, filename, contentType string) (string, error) {
	ref := uuid.NewString() + filepath.Ext(filename)

	_, err := s.client.PutObject(ctx, s.bucket, ref, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", ref, err)
	}

	return ref, nil
}

func (s *ObjectStore) Delete(ctx context.Context, ref string) error {
	return s.client.RemoveObject(ctx, s.bucket, ref, minio.RemoveObjectOptions{})
}

func (s *ObjectStore) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, ref)
}
