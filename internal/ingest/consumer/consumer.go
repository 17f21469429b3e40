// Package consumer ingests queued product rows in bounded batches, persisting
// each valid row and publishing a creation notification.
package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/harborline/catalog-service/internal/app/catalog/contracts"
	"github.com/harborline/catalog-service/internal/app/catalog/domain"
)

// Notifier publishes a creation notification for a persisted product.
type Notifier interface {
	Notify(ctx context.Context, product *domain.Product) error
}

// Source delivers bounded batches of queue messages and acknowledges them.
type Source interface {
	// Fetch blocks for at least one message and returns up to max.
	Fetch(ctx context.Context, max int) ([]kafka.Message, error)

	// Commit acknowledges messages so they are not redelivered.
	Commit(ctx context.Context, msgs ...kafka.Message) error
}

// Status classifies the outcome of one message.
type Status string

const (
	StatusCreated Status = "created"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome is the explicit per-message result of a batch.
type Outcome struct {
	Partition int
	Offset    int64
	Status    Status
	ProductID string
	Err       error
}

// Consumer processes batches strictly in order. A store or publish failure
// aborts the batch: earlier successes stay committed, later messages are not
// attempted and redelivery resumes at the failed message.
type Consumer struct {
	source    Source
	store     contracts.CatalogStore
	notifier  Notifier
	batchSize int
	log       *slog.Logger
}

// New creates a Consumer.
func New(source Source, store contracts.CatalogStore, notifier Notifier, batchSize int, log *slog.Logger) *Consumer {
	return &Consumer{
		source:    source,
		store:     store,
		notifier:  notifier,
		batchSize: batchSize,
		log:       log,
	}
}

// ProcessBatch handles messages sequentially and returns one Outcome per
// attempted message. On failure the returned error is non-nil and the
// outcomes cover only the attempted prefix.
func (c *Consumer) ProcessBatch(ctx context.Context, msgs []kafka.Message) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(msgs))

	for _, m := range msgs {
		outcome := Outcome{Partition: m.Partition, Offset: m.Offset}

		var draft domain.Draft
		if err := json.Unmarshal(m.Value, &draft); err != nil {
			outcome.Status = StatusFailed
			outcome.Err = fmt.Errorf("failed to decode message: %w", err)
			outcomes = append(outcomes, outcome)
			return outcomes, outcome.Err
		}

		if err := draft.ValidateForIngest(); err != nil {
			// Skip, don't retry: from the queue's perspective this message
			// was accepted.
			c.log.Warn("skipping invalid row", "partition", m.Partition, "offset", m.Offset, "reason", err)
			outcome.Status = StatusSkipped
			outcome.Err = err
			outcomes = append(outcomes, outcome)
			continue
		}

		product, err := c.store.CreateProductWithStock(ctx, draft)
		if err != nil {
			outcome.Status = StatusFailed
			outcome.Err = err
			outcomes = append(outcomes, outcome)
			return outcomes, err
		}
		c.log.Info("product created", "product_id", product.ID, "title", product.Title, "price", product.Price)

		if err := c.notifier.Notify(ctx, product); err != nil {
			outcome.Status = StatusFailed
			outcome.Err = err
			outcomes = append(outcomes, outcome)
			return outcomes, err
		}

		outcome.Status = StatusCreated
		outcome.ProductID = product.ID
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// Run fetches and processes batches until ctx is cancelled. Offsets are
// committed for the non-failed prefix of each batch only, so a failed message
// and everything after it are redelivered.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msgs, err := c.source.Fetch(ctx, c.batchSize)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("failed to fetch batch", "error", err)
			continue
		}

		outcomes, procErr := c.ProcessBatch(ctx, msgs)

		acked := make([]kafka.Message, 0, len(outcomes))
		for i, o := range outcomes {
			if o.Status == StatusFailed {
				break
			}
			acked = append(acked, msgs[i])
		}
		if len(acked) > 0 {
			if err := c.source.Commit(ctx, acked...); err != nil {
				c.log.Error("failed to commit offsets", "error", err)
			}
		}

		if procErr != nil {
			c.log.Error("batch aborted", "processed", len(acked), "total", len(msgs), "error", procErr)
		}
	}
}
