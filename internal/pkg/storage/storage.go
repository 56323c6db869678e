// Package storage abstracts object storage backends used for uploaded media.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrMissingSigner indicates signed URL support is not configured.
var ErrMissingSigner = errors.New("storage: signed url signer not configured")

// Blob defines the object storage operations the application needs.
type Blob interface {
	io.Closer

	// Upload stores data under the key and returns object metadata.
	Upload(ctx context.Context, bucket, key string, r io.Reader, opts UploadOptions) (ObjectInfo, error)
	// Download retrieves the object data and metadata.
	Download(ctx context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes the object.
	Delete(ctx context.Context, bucket, key string) error
	// SignedURL returns a time-limited URL for downloading the object.
	SignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

// UploadOptions configures upload behavior.
type UploadOptions struct {
	// Size is the expected content length, -1 when unknown.
	Size int64
	// ContentType is the MIME type for the object.
	ContentType string
}

// ObjectInfo describes object metadata.
type ObjectInfo struct {
	// Bucket is the bucket name.
	Bucket string
	// Key is the object key.
	Key string
	// Size is the object size in bytes.
	Size int64
	// ETag is the object ETag when provided.
	ETag string
	// ContentType is the object MIME type.
	ContentType string
	// UpdatedAt is the last modified time.
	UpdatedAt time.Time
}
