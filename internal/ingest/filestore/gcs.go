package filestore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
)

// GCS implements ObjectStore on Google Cloud Storage.
type GCS struct {
	client *storage.Client
}

// NewGCS creates a GCS-backed ObjectStore.
func NewGCS(client *storage.Client) *GCS {
	return &GCS{client: client}
}

// Open returns a reader over the object's content.
func (g *GCS) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	r, err := g.client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open gs://%s/%s: %w", bucket, key, err)
	}
	return r, nil
}

// Copy duplicates an object within the same bucket.
func (g *GCS) Copy(ctx context.Context, bucket, srcKey, dstKey string) error {
	src := g.client.Bucket(bucket).Object(srcKey)
	dst := g.client.Bucket(bucket).Object(dstKey)
	if _, err := dst.CopierFrom(src).Run(ctx); err != nil {
		return fmt.Errorf("failed to copy gs://%s/%s to %s: %w", bucket, srcKey, dstKey, err)
	}
	return nil
}

// Delete removes an object.
func (g *GCS) Delete(ctx context.Context, bucket, key string) error {
	if err := g.client.Bucket(bucket).Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete gs://%s/%s: %w", bucket, key, err)
	}
	return nil
}

// SignedUploadURL returns a V4 signed URL accepting a PUT of the object.
func (g *GCS) SignedUploadURL(bucket, key string, ttl time.Duration) (string, error) {
	url, err := g.client.Bucket(bucket).SignedURL(key, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodPut,
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign upload URL for gs://%s/%s: %w", bucket, key, err)
	}
	return url, nil
}
