// Package config provides runtime configuration values for the service
// binaries. Values come from the environment, with a .env file loaded first
// when present.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds configuration knobs for every binary. Each binary reads only
// the fields it needs; all values are opaque strings to this package.
type Config struct {
	ProjectID       string
	SpannerDatabase string

	KafkaBrokers    []string
	KafkaTopic      string
	KafkaGroupID    string
	IngestBatchSize int

	UploadBucket        string
	StorageSubscription string

	NotifyTopic           string
	HighPriceSubscription string
	LowPriceSubscription  string

	HTTPAddr        string
	UploadURLTTL    time.Duration
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from the environment with defaults suitable
// for local development against emulators.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ProjectID:       getenv("GCP_PROJECT_ID", "test-project"),
		SpannerDatabase: getenv("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/catalog-db"),

		KafkaBrokers:    strings.Split(getenv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:      getenv("KAFKA_TOPIC", "catalog-items"),
		KafkaGroupID:    getenv("KAFKA_GROUP_ID", "catalog-ingest"),
		IngestBatchSize: atoienv("INGEST_BATCH_SIZE", 5),

		UploadBucket:        getenv("UPLOAD_BUCKET", "catalog-import"),
		StorageSubscription: getenv("STORAGE_SUBSCRIPTION", "catalog-import-events"),

		NotifyTopic:           getenv("NOTIFY_TOPIC", "create-product-topic"),
		HighPriceSubscription: getenv("HIGH_PRICE_SUBSCRIPTION", "create-product-high-price"),
		LowPriceSubscription:  getenv("LOW_PRICE_SUBSCRIPTION", "create-product-low-price"),

		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		UploadURLTTL:    durenvs("UPLOAD_URL_TTL", 300),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
	}
}
