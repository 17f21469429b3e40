// Package producer hands decoded CSV records to the row queue, one message
// per record.
package producer

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/harborline/catalog-service/internal/app/catalog/domain"
	"github.com/harborline/catalog-service/internal/ingest/csvdec"
)

// QueueWriter is the subset of *kafka.Writer the producer needs.
type QueueWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// RowResult records the outcome of a single record's send.
type RowResult struct {
	Row int
	Err error
}

// Report summarizes a Produce call. Failures lists the rows whose send
// failed; those records were never enqueued and are not retried.
type Report struct {
	Sent     int
	Failed   int
	Failures []RowResult
}

// Producer enqueues records as independent queue messages. Per-record
// failures are logged and reported but never abort the remaining records;
// there is no ordering guarantee between records of the same file.
type Producer struct {
	writer QueueWriter
	log    *slog.Logger
}

// New creates a Producer writing to w.
func New(w QueueWriter, log *slog.Logger) *Producer {
	return &Producer{writer: w, log: log}
}

// DraftFromRecord maps a decoded CSV record onto a draft. CSV values are all
// strings; the price column is parsed here so the queued payload carries a
// number. An absent or unparsable price becomes a nil price, which the
// consumer's validation rejects.
func DraftFromRecord(rec csvdec.Record) domain.Draft {
	draft := domain.Draft{
		Title:       rec["title"],
		Description: rec["description"],
	}
	if raw, ok := rec["price"]; ok {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			draft.Price = &price
		}
	}
	return draft
}

// Produce serializes each record as a draft (no envelope) and sends it as its
// own message, sequentially, in row order.
func (p *Producer) Produce(ctx context.Context, records []csvdec.Record) Report {
	var report Report

	for i, rec := range records {
		body, err := json.Marshal(DraftFromRecord(rec))
		if err == nil {
			err = p.writer.WriteMessages(ctx, kafka.Message{Value: body})
		}
		if err != nil {
			p.log.Error("failed to enqueue record", "row", i, "error", err)
			report.Failed++
			report.Failures = append(report.Failures, RowResult{Row: i, Err: err})
			continue
		}
		report.Sent++
	}

	return report
}
