// Package event publishes seed lifecycle events so downstream consumers
// (search indexer, cache warmers) know fresh catalog data landed.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	pkgkafka "github.com/goleaf/statybae-seeder/pkg/kafka"
)

// Aggregate type constant.
const AggregateTypeSeedRun = "seed_run"

// Source identifier for events originating from the seeder.
const SourceSeeder = "statybae-seeder"

// SeedCompletedData is the payload for a seed.completed event.
type SeedCompletedData struct {
	RunID      string    `json:"run_id"`
	Units      []string  `json:"units"`
	Inserted   int       `json:"inserted"`
	Updated    int       `json:"updated"`
	Skipped    int       `json:"skipped"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Producer publishes seeder domain events to Kafka. A nil Producer is a
// valid no-op, used when no brokers are configured.
type Producer struct {
	kafka  *pkgkafka.Producer
	topic  string
	logger *slog.Logger
}

// NewProducer creates a new event producer for the seeder.
func NewProducer(kafka *pkgkafka.Producer, topic string, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		topic:  topic,
		logger: logger,
	}
}

// PublishSeedCompleted publishes a seed.completed event.
func (p *Producer) PublishSeedCompleted(ctx context.Context, data SeedCompletedData) error {
	if p == nil {
		return nil
	}

	event, err := pkgkafka.NewEvent(p.topic, data.RunID, AggregateTypeSeedRun, SourceSeeder, data)
	if err != nil {
		return fmt.Errorf("create seed.completed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, p.topic, event); err != nil {
		return fmt.Errorf("publish seed.completed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published seed.completed event",
		slog.String("run_id", data.RunID),
		slog.Int("inserted", data.Inserted),
	)
	return nil
}

// Close releases the underlying Kafka writer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.kafka.Close()
}
