package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	"github.com/segmentio/kafka-go"

	"github.com/harborline/catalog-service/internal/config"
	"github.com/harborline/catalog-service/internal/ingest/filestore"
	"github.com/harborline/catalog-service/internal/ingest/importer"
	"github.com/harborline/catalog-service/internal/ingest/producer"
	"github.com/harborline/catalog-service/internal/obs"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run importer: %v", err)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	logger := obs.NewLogger("catalog-importer")

	logger.Info("starting importer",
		"upload_bucket", cfg.UploadBucket,
		"storage_subscription", cfg.StorageSubscription,
		"kafka_topic", cfg.KafkaTopic,
	)

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	defer storageClient.Close()

	pubsubClient, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to create pubsub client: %w", err)
	}
	defer pubsubClient.Close()

	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBrokers...),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer writer.Close()

	store := filestore.NewGCS(storageClient)
	imp := importer.New(
		store,
		producer.New(writer, logger),
		filestore.NewLifecycle(store),
		logger,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	sub := pubsubClient.Subscription(cfg.StorageSubscription)
	err = sub.Receive(ctx, func(ctx context.Context, m *pubsub.Message) {
		ev, ok := importer.EventFromPubSub(m)
		if !ok {
			m.Ack()
			return
		}
		// File-level failures are logged inside HandleEvent and deliberately
		// not redelivered; there is no file-level retry.
		imp.HandleEvent(ctx, ev)
		m.Ack()
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("subscription receive failed: %w", err)
	}

	logger.Info("importer stopped")
	return nil
}
