package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Driver names accepted in configuration.
const (
	DriverS3    = "s3"
	DriverGCS   = "gcs"
	DriverMinIO = "minio"
)

var ErrUnknownDriver = errors.New("storage: unknown driver")

// FactoryOptions carries the per-backend settings; only the selected
// driver's options are read.
type FactoryOptions struct {
	S3    S3Options
	GCS   GCSOptions
	MinIO MinIOOptions
}

// NewFromDriver builds the Blob backend named by driver.
func NewFromDriver(ctx context.Context, driver string, opts FactoryOptions) (Blob, error) {
	switch strings.ToLower(driver) {
	case DriverS3:
		return NewS3(ctx, opts.S3)
	case DriverGCS:
		return NewGCS(ctx, opts.GCS)
	case DriverMinIO:
		return NewMinIO(opts.MinIO)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
}
