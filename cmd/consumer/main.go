package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/spanner"
	"github.com/segmentio/kafka-go"

	"github.com/harborline/catalog-service/internal/app/catalog/repo"
	"github.com/harborline/catalog-service/internal/config"
	"github.com/harborline/catalog-service/internal/ingest/consumer"
	"github.com/harborline/catalog-service/internal/notify"
	"github.com/harborline/catalog-service/internal/obs"
	"github.com/harborline/catalog-service/internal/pkg/committer"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run consumer: %v", err)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	logger := obs.NewLogger("catalog-consumer")

	logger.Info("starting consumer",
		"spanner_database", cfg.SpannerDatabase,
		"kafka_topic", cfg.KafkaTopic,
		"kafka_group", cfg.KafkaGroupID,
		"batch_size", cfg.IngestBatchSize,
	)

	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer spannerClient.Close()

	pubsubClient, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to create pubsub client: %w", err)
	}
	defer pubsubClient.Close()

	topic := pubsubClient.Topic(cfg.NotifyTopic)
	defer topic.Stop()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroupID,
	})
	source := consumer.NewKafkaSource(reader)
	defer source.Close()

	store := repo.NewCatalogStore(
		repo.NewProductRepo(),
		repo.NewStockRepo(),
		committer.NewCommitter(spannerClient),
	)
	router := notify.NewRouter(topic, logger)

	cons := consumer.New(source, store, router, cfg.IngestBatchSize, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	if err := cons.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("consumer stopped")
	return nil
}
