// Package storage provides the file backends used for uploaded briefs and
// exported documents. Backends are interchangeable behind the Storage
// interface and selected through STORAGE_TYPE.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Storage stores and retrieves file blobs by an opaque storage key
type Storage interface {
	// Upload writes the data and returns the storage key it was written under
	Upload(ctx context.Context, fileID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download opens the blob stored under the given key
	Download(ctx context.Context, storageKey string) (io.ReadCloser, error)

	// Delete removes the blob stored under the given key
	Delete(ctx context.Context, storageKey string) error
}

// ErrBucketRequired is returned when the S3 backend is selected without a bucket
var ErrBucketRequired = errors.New("AWS_S3_BUCKET is required for the s3 backend")

const (
	backendLocal = "local"
	backendS3    = "s3"

	defaultLocalDir = "./data/files"
	defaultRegion   = "us-east-1"
)

// NewStorageFromEnv selects and configures a backend from the environment.
// STORAGE_TYPE picks local (default) or s3; each backend reads its own
// settings.
func NewStorageFromEnv() (Storage, error) {
	backend := os.Getenv("STORAGE_TYPE")
	if backend == "" {
		backend = backendLocal
	}

	switch backend {
	case backendLocal:
		dir := os.Getenv("STORAGE_LOCAL_PATH")
		if dir == "" {
			dir = defaultLocalDir
		}
		return NewLocalStorage(dir)

	case backendS3:
		bucket := os.Getenv("AWS_S3_BUCKET")
		if bucket == "" {
			return nil, ErrBucketRequired
		}
		region := os.Getenv("AWS_REGION")
		if region == "" {
			region = defaultRegion
		}
		return NewS3Storage(S3Config{
			Bucket:    bucket,
			Region:    region,
			AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		})

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// storageKey builds the key a blob lives under. Keys are sharded by the
// first byte of the file ID so local directories stay shallow.
func storageKey(fileID uuid.UUID, filename string) string {
	id := fileID.String()
	return path.Join(id[:2], id+"_"+sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\':
			return '_'
		}
		return r
	}, name)
}
