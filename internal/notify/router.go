// Package notify publishes product-creation notifications to a broadcast
// topic. Routing to interest groups happens subscription-side on the price
// attribute; the router itself is filter-agnostic.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"cloud.google.com/go/pubsub"

	"github.com/harborline/catalog-service/internal/app/catalog/domain"
)

// HighPriceThreshold splits subscribers into the two interest groups. The
// boundary is inclusive: a price of exactly 100 counts as high.
const HighPriceThreshold = 100.0

// Interest group names used by subscription tooling.
const (
	GroupHighPrice = "high"
	GroupLowPrice  = "low"
)

// InterestGroup returns the group a notification with the given price is
// routed to.
func InterestGroup(price float64) string {
	if price >= HighPriceThreshold {
		return GroupHighPrice
	}
	return GroupLowPrice
}

// Event is the notification payload.
type Event struct {
	Message string         `json:"message"`
	Product domain.Product `json:"product"`
}

// Attributes builds the delivery attributes subscribers filter on.
func Attributes(product *domain.Product) map[string]string {
	return map[string]string{
		"productId": product.ID,
		"price":     strconv.FormatFloat(product.Price, 'f', -1, 64),
	}
}

// Topic is the subset of *pubsub.Topic the router needs.
type Topic interface {
	Publish(ctx context.Context, msg *pubsub.Message) *pubsub.PublishResult
}

// Router publishes one notification per persisted product. Publish failures
// are not caught here; they propagate to the caller.
type Router struct {
	topic Topic
	log   *slog.Logger
}

// NewRouter creates a Router publishing to topic.
func NewRouter(topic Topic, log *slog.Logger) *Router {
	return &Router{topic: topic, log: log}
}

// Notify publishes a creation notification tagged with the product id and
// price, and waits for the publish to be acknowledged.
func (r *Router) Notify(ctx context.Context, product *domain.Product) error {
	payload, err := json.Marshal(Event{
		Message: "New product has been created",
		Product: *product,
	})
	if err != nil {
		return fmt.Errorf("failed to serialize notification: %w", err)
	}

	result := r.topic.Publish(ctx, &pubsub.Message{
		Data:       payload,
		Attributes: Attributes(product),
	})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	r.log.Info("notification published", "product_id", product.ID, "price", product.Price)
	return nil
}
