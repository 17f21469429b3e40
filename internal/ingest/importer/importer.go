// Package importer orchestrates the upload flow: decode an uploaded CSV,
// enqueue one message per row, then finalize the file's location.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/harborline/catalog-service/internal/ingest/csvdec"
	"github.com/harborline/catalog-service/internal/ingest/filestore"
	"github.com/harborline/catalog-service/internal/ingest/producer"
)

// FileResult is the explicit per-file outcome of one event record.
type FileResult struct {
	Bucket  string
	Key     string
	Skipped bool
	Rows    int
	Sent    int
	Failed  int
	Err     error
}

// Importer processes storage trigger events. Files named in one event are
// handled strictly sequentially; one file's failure never prevents the
// processing of subsequent files.
type Importer struct {
	store     filestore.ObjectStore
	producer  *producer.Producer
	lifecycle *filestore.Lifecycle
	log       *slog.Logger
}

// New creates an Importer.
func New(store filestore.ObjectStore, prod *producer.Producer, lc *filestore.Lifecycle, log *slog.Logger) *Importer {
	return &Importer{
		store:     store,
		producer:  prod,
		lifecycle: lc,
		log:       log,
	}
}

// HandleEvent processes every record of the event in order and returns one
// FileResult per record. Errors are carried in the results, never returned:
// the queue's redelivery policy is not invoked for file-level failures.
func (imp *Importer) HandleEvent(ctx context.Context, ev Event) []FileResult {
	results := make([]FileResult, 0, len(ev.Records))
	for _, rec := range ev.Records {
		results = append(results, imp.processFile(ctx, rec.BucketName, NormalizeKey(rec.ObjectKey)))
	}
	return results
}

func (imp *Importer) processFile(ctx context.Context, bucket, key string) FileResult {
	result := FileResult{Bucket: bucket, Key: key}

	if !strings.HasPrefix(key, filestore.StagingPrefix) {
		imp.log.Info("skipping file outside staging prefix", "bucket", bucket, "key", key)
		result.Skipped = true
		return result
	}

	imp.log.Info("processing file", "bucket", bucket, "key", key)

	body, err := imp.store.Open(ctx, bucket, key)
	if err != nil {
		result.Err = err
		imp.log.Error("failed to open file", "bucket", bucket, "key", key, "error", err)
		return result
	}
	defer body.Close()

	rows, err := csvdec.New(body).ReadAll()
	if err != nil {
		// Reject-on-first-error: the file stays in place, nothing is enqueued.
		result.Err = fmt.Errorf("failed to decode file: %w", err)
		imp.log.Error("failed to decode file", "bucket", bucket, "key", key, "error", err)
		return result
	}
	result.Rows = len(rows)
	imp.log.Info("decoded records", "bucket", bucket, "key", key, "rows", len(rows))

	report := imp.producer.Produce(ctx, rows)
	result.Sent = report.Sent
	result.Failed = report.Failed

	// Finalize regardless of individual record failures.
	if err := imp.lifecycle.Finalize(ctx, bucket, key); err != nil {
		result.Err = err
		imp.log.Error("failed to finalize file", "bucket", bucket, "key", key, "error", err)
		return result
	}

	imp.log.Info("file processed", "bucket", bucket, "key", key, "sent", report.Sent, "failed", report.Failed)
	return result
}
