package storage

import (
	"context"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCS implements Blob using Google Cloud Storage.
type GCS struct {
	client *gcs.Client
	signer *gcsSigner
}

// GCSOptions configures GCS client initialization.
type GCSOptions struct {
	// CredentialsFile is an optional service account key file path.
	CredentialsFile string
	// GoogleAccessID is the service account access ID for URL signing.
	GoogleAccessID string
	// PrivateKey is the service account private key for URL signing.
	PrivateKey []byte
}

type gcsSigner struct {
	googleAccessID string
	privateKey     []byte
}

// NewGCS constructs a GCS blob store with optional signing support.
func NewGCS(ctx context.Context, opts GCSOptions) (*GCS, error) {
	var clientOpts []option.ClientOption
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}

	client, err := gcs.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}

	var signer *gcsSigner
	if opts.GoogleAccessID != "" && len(opts.PrivateKey) > 0 {
		signer = &gcsSigner{
			googleAccessID: opts.GoogleAccessID,
			privateKey:     opts.PrivateKey,
		}
	}

	return &GCS{client: client, signer: signer}, nil
}

// Upload stores data in GCS and returns metadata.
func (g *GCS) Upload(ctx context.Context, bucket, key string, r io.Reader, opts UploadOptions) (ObjectInfo, error) {
	writer := g.client.Bucket(bucket).Object(key).NewWriter(ctx)
	if opts.ContentType != "" {
		writer.ContentType = opts.ContentType
	}

	if _, err := io.Copy(writer, r); err != nil {
		_ = writer.Close()
		return ObjectInfo{}, err
	}

	if err := writer.Close(); err != nil {
		return ObjectInfo{}, err
	}

	return gcsAttrsToInfo(writer.Attrs()), nil
}

// Download retrieves data and metadata from GCS.
func (g *GCS) Download(ctx context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error) {
	obj := g.client.Bucket(bucket).Object(key)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return nil, ObjectInfo{}, err
	}

	attrs, err := obj.Attrs(ctx)
	if err != nil {
		_ = reader.Close()
		return nil, ObjectInfo{}, err
	}

	return reader, gcsAttrsToInfo(attrs), nil
}

// Delete removes an object from GCS.
func (g *GCS) Delete(ctx context.Context, bucket, key string) error {
	return g.client.Bucket(bucket).Object(key).Delete(ctx)
}

// SignedURL returns a time-limited download URL for a GCS object.
func (g *GCS) SignedURL(_ context.Context, bucket, key string, expiry time.Duration) (string, error) {
	if g.signer == nil {
		return "", ErrMissingSigner
	}

	return gcs.SignedURL(bucket, key, &gcs.SignedURLOptions{
		Method:         "GET",
		Expires:        time.Now().Add(expiry),
		GoogleAccessID: g.signer.googleAccessID,
		PrivateKey:     g.signer.privateKey,
	})
}

// Close closes the GCS client.
func (g *GCS) Close() error {
	return g.client.Close()
}

func gcsAttrsToInfo(attrs *gcs.ObjectAttrs) ObjectInfo {
	if attrs == nil {
		return ObjectInfo{}
	}

	return ObjectInfo{
		Bucket:      attrs.Bucket,
		Key:         attrs.Name,
		Size:        attrs.Size,
		ETag:        attrs.Etag,
		ContentType: attrs.ContentType,
		UpdatedAt:   attrs.Updated,
	}
}
