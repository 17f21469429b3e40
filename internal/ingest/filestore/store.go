// Package filestore wraps bucket access for uploaded catalog files and owns
// their lifecycle from the staging prefix to the processed prefix.
package filestore

import (
	"context"
	"io"
	"time"
)

// Prefixes marking a file's lifecycle state inside the bucket.
const (
	StagingPrefix   = "uploaded/"
	ProcessedPrefix = "processed/"
)

// ObjectStore abstracts the object-storage operations the pipeline needs.
type ObjectStore interface {
	// Open returns a reader over the object's content.
	Open(ctx context.Context, bucket, key string) (io.ReadCloser, error)

	// Copy duplicates an object within the same bucket.
	Copy(ctx context.Context, bucket, srcKey, dstKey string) error

	// Delete removes an object.
	Delete(ctx context.Context, bucket, key string) error

	// SignedUploadURL returns a time-limited URL that accepts a PUT of the
	// object's content.
	SignedUploadURL(bucket, key string, ttl time.Duration) (string, error)
}
