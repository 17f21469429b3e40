package consumer

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// drainTimeout bounds how long Fetch waits for additional messages after the
// first one arrived.
const drainTimeout = 250 * time.Millisecond

// KafkaSource implements Source over a kafka-go Reader with explicit offset
// commits.
type KafkaSource struct {
	reader *kafka.Reader
}

// NewKafkaSource creates a Source over r. The reader must be configured with
// a consumer group, otherwise commits are no-ops.
func NewKafkaSource(r *kafka.Reader) *KafkaSource {
	return &KafkaSource{reader: r}
}

// Fetch blocks until one message is available, then drains whatever else
// arrives within drainTimeout, up to max messages.
func (s *KafkaSource) Fetch(ctx context.Context, max int) ([]kafka.Message, error) {
	first, err := s.reader.FetchMessage(ctx)
	if err != nil {
		return nil, err
	}
	msgs := []kafka.Message{first}

	for len(msgs) < max {
		drainCtx, cancel := context.WithTimeout(ctx, drainTimeout)
		m, err := s.reader.FetchMessage(drainCtx)
		cancel()
		if err != nil {
			break
		}
		msgs = append(msgs, m)
	}

	return msgs, nil
}

// Commit acknowledges the given messages.
func (s *KafkaSource) Commit(ctx context.Context, msgs ...kafka.Message) error {
	return s.reader.CommitMessages(ctx, msgs...)
}

// Close closes the underlying reader.
func (s *KafkaSource) Close() error {
	return s.reader.Close()
}
