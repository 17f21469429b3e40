package importer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborline/catalog-service/internal/ingest/filestore"
	"github.com/harborline/catalog-service/internal/ingest/producer"
)

type memStore struct {
	objects map[string][]byte
	copyErr map[string]error
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte), copyErr: make(map[string]error)}
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
	if err := m.copyErr[m.path(bucket, srcKey)]; err != nil {
		return err
	}
	data, ok := m.objects[m.path(bucket, srcKey)]
	if !ok {
		return errors.New("object not found")
	}
	m.objects[m.path(bucket, dstKey)] = data
	return nil
}

func (m *memStore) Delete(ctx context.Context, bucket, key string) error {
	delete(m.objects, m.path(bucket, key))
	return nil
}

func (m *memStore) SignedUploadURL(bucket, key string, ttl time.Duration) (string, error) {
	return "https://storage.example.com/" + m.path(bucket, key), nil
}

type fakeWriter struct {
	messages []kafka.Message
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	f.messages = append(f.messages, msgs...)
	return nil
}

func newImporter(store filestore.ObjectStore, w *fakeWriter) *Importer {
	log := slog.New(slog.DiscardHandler)
	return New(store, producer.New(w, log), filestore.NewLifecycle(store), log)
}

func TestImporter_HandleEvent(t *testing.T) {
	t.Run("decodes rows, enqueues them and relocates the file", func(t *testing.T) {
		store := newMemStore()
		store.objects["imports/uploaded/products.csv"] = []byte(
			"title,description,price\nWidget,A useful widget,25\nGadget,A cool gadget,150\n")
		w := &fakeWriter{}
		imp := newImporter(store, w)

		results := imp.HandleEvent(context.Background(), Event{Records: []ObjectRecord{
			{BucketName: "imports", ObjectKey: "uploaded/products.csv"},
		}})

		require.Len(t, results, 1)
		assert.NoError(t, results[0].Err)
		assert.Equal(t, 2, results[0].Rows)
		assert.Equal(t, 2, results[0].Sent)
		assert.Len(t, w.messages, 2)
		assert.Contains(t, store.objects, "imports/processed/products.csv")
		assert.NotContains(t, store.objects, "imports/uploaded/products.csv")
	})

	t.Run("skips keys outside the staging prefix", func(t *testing.T) {
		store := newMemStore()
		store.objects["imports/other/products.csv"] = []byte("title\nA\n")
		w := &fakeWriter{}
		imp := newImporter(store, w)

		results := imp.HandleEvent(context.Background(), Event{Records: []ObjectRecord{
			{BucketName: "imports", ObjectKey: "other/products.csv"},
		}})

		require.Len(t, results, 1)
		assert.True(t, results[0].Skipped)
		assert.Empty(t, w.messages)
		assert.Contains(t, store.objects, "imports/other/products.csv")
	})

	t.Run("percent-decodes keys with plus as space", func(t *testing.T) {
		store := newMemStore()
		store.objects["imports/uploaded/new products.csv"] = []byte("title,description,price\nA,B,1\n")
		w := &fakeWriter{}
		imp := newImporter(store, w)

		results := imp.HandleEvent(context.Background(), Event{Records: []ObjectRecord{
			{BucketName: "imports", ObjectKey: "uploaded/new+products.csv"},
		}})

		require.Len(t, results, 1)
		assert.NoError(t, results[0].Err)
		assert.Equal(t, 1, results[0].Sent)
	})

	t.Run("malformed file enqueues nothing and stays in place", func(t *testing.T) {
		store := newMemStore()
		store.objects["imports/uploaded/bad.csv"] = []byte("title,price\nA,1\nbroken-row\n")
		w := &fakeWriter{}
		imp := newImporter(store, w)

		results := imp.HandleEvent(context.Background(), Event{Records: []ObjectRecord{
			{BucketName: "imports", ObjectKey: "uploaded/bad.csv"},
		}})

		require.Len(t, results, 1)
		assert.Error(t, results[0].Err)
		assert.Empty(t, w.messages)
		assert.Contains(t, store.objects, "imports/uploaded/bad.csv")
	})

	t.Run("one file's relocation failure does not halt later files", func(t *testing.T) {
		store := newMemStore()
		store.objects["imports/uploaded/a.csv"] = []byte("title,description,price\nA,x,1\n")
		store.objects["imports/uploaded/b.csv"] = []byte("title,description,price\nB,y,2\n")
		store.copyErr["imports/uploaded/a.csv"] = errors.New("copy refused")
		w := &fakeWriter{}
		imp := newImporter(store, w)

		results := imp.HandleEvent(context.Background(), Event{Records: []ObjectRecord{
			{BucketName: "imports", ObjectKey: "uploaded/a.csv"},
			{BucketName: "imports", ObjectKey: "uploaded/b.csv"},
		}})

		require.Len(t, results, 2)
		assert.Error(t, results[0].Err)
		// Rows of the failed file were still enqueued before relocation.
		assert.Equal(t, 1, results[0].Sent)
		assert.NoError(t, results[1].Err)
		assert.Len(t, w.messages, 2)
		assert.Contains(t, store.objects, "imports/uploaded/a.csv")
		assert.Contains(t, store.objects, "imports/processed/b.csv")
	})
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "uploaded/new products.csv", NormalizeKey("uploaded/new+products.csv"))
	assert.Equal(t, "uploaded/sale 50%.csv", NormalizeKey("uploaded/sale+50%25.csv"))
	// Undecodable keys pass through unchanged.
	assert.Equal(t, "uploaded/%zz.csv", NormalizeKey("uploaded/%zz.csv"))
}
