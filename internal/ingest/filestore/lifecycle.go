package filestore

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Lifecycle finalizes fully processed files: copy to the processed prefix,
// then delete the original.
type Lifecycle struct {
	store ObjectStore
}

// NewLifecycle creates a Lifecycle over the given store.
func NewLifecycle(store ObjectStore) *Lifecycle {
	return &Lifecycle{store: store}
}

// Finalize relocates key from the staging prefix to the processed prefix.
// When the copy fails the delete must not run, so the original stays
// available; the error is returned for the caller to log.
func (l *Lifecycle) Finalize(ctx context.Context, bucket, key string) error {
	dstKey := strings.Replace(key, StagingPrefix, ProcessedPrefix, 1)

	if err := l.store.Copy(ctx, bucket, key, dstKey); err != nil {
		return fmt.Errorf("failed to move file to processed prefix: %w", err)
	}

	if err := l.store.Delete(ctx, bucket, key); err != nil {
		return fmt.Errorf("failed to delete original file: %w", err)
	}

	return nil
}

// Uploader issues signed upload URLs targeting the staging prefix of a fixed
// bucket.
type Uploader struct {
	store  ObjectStore
	bucket string
}

// NewUploader creates an Uploader bound to bucket.
func NewUploader(store ObjectStore, bucket string) *Uploader {
	return &Uploader{store: store, bucket: bucket}
}

// UploadURL returns a time-limited PUT URL for uploaded/<name>.
func (u *Uploader) UploadURL(name string, ttl time.Duration) (string, error) {
	return u.store.SignedUploadURL(u.bucket, StagingPrefix+name, ttl)
}
