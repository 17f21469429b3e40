package filestore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory ObjectStore keyed by bucket/key.
type memStore struct {
	objects map[string][]byte
	copyErr error
	delErr  error
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (m *memStore) path(bucket, key string) string { return bucket + "/" + key }

func (m *memStore) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	data, ok := m.objects[m.path(bucket, key)]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStore) Copy(ctx context.Context, bucket, srcKey, dstKey string) error {
	if m.copyErr != nil {
		return m.copyErr
	}
	data, ok := m.objects[m.path(bucket, srcKey)]
	if !ok {
		return errors.New("object not found")
	}
	m.objects[m.path(bucket, dstKey)] = data
	return nil
}

func (m *memStore) Delete(ctx context.Context, bucket, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.objects, m.path(bucket, key))
	return nil
}

func (m *memStore) SignedUploadURL(bucket, key string, ttl time.Duration) (string, error) {
	return "https://storage.example.com/" + m.path(bucket, key) + "?signed", nil
}

func TestLifecycle_Finalize(t *testing.T) {
	t.Run("moves file to processed prefix and deletes original", func(t *testing.T) {
		store := newMemStore()
		store.objects["imports/uploaded/products.csv"] = []byte("data")

		lc := NewLifecycle(store)
		err := lc.Finalize(context.Background(), "imports", "uploaded/products.csv")
		require.NoError(t, err)

		assert.Contains(t, store.objects, "imports/processed/products.csv")
		assert.NotContains(t, store.objects, "imports/uploaded/products.csv")
	})

	t.Run("delete does not run when copy fails", func(t *testing.T) {
		store := newMemStore()
		store.objects["imports/uploaded/products.csv"] = []byte("data")
		store.copyErr = errors.New("copy failed")

		lc := NewLifecycle(store)
		err := lc.Finalize(context.Background(), "imports", "uploaded/products.csv")
		require.Error(t, err)

		// Original must remain available.
		assert.Contains(t, store.objects, "imports/uploaded/products.csv")
		assert.NotContains(t, store.objects, "imports/processed/products.csv")
	})

	t.Run("delete failure surfaces after a successful copy", func(t *testing.T) {
		store := newMemStore()
		store.objects["imports/uploaded/products.csv"] = []byte("data")
		store.delErr = errors.New("delete failed")

		lc := NewLifecycle(store)
		err := lc.Finalize(context.Background(), "imports", "uploaded/products.csv")
		require.Error(t, err)
		assert.Contains(t, store.objects, "imports/processed/products.csv")
	})
}

func TestUploader_UploadURL(t *testing.T) {
	u := NewUploader(newMemStore(), "imports")

	url, err := u.UploadURL("products.csv", 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/imports/uploaded/products.csv?signed", url)
}
