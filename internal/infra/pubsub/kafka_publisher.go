package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"taskmanager/internal/domain/entity"
	"taskmanager/internal/domain/service"
	"taskmanager/internal/errors"
)

// messageWriter is the subset of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic.
// Events are keyed by subject so one account's events stay ordered.
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// Writes are synchronous and carry one event each, so a batch is flushed
// as soon as it holds a single message.
const (
	kafkaBatchSize    = 1
	kafkaBatchTimeout = 5 * time.Millisecond
	kafkaWriteTimeout = 2 * time.Second
	kafkaMaxAttempts  = 3
)

// NewKafkaPublisher creates a publisher writing to topic on brokers.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return newKafkaPublisher(newKafkaWriter(brokers, topic), logger)
}

func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchSize:              kafkaBatchSize,
		BatchTimeout:           kafkaBatchTimeout,
		WriteTimeout:           kafkaWriteTimeout,
		MaxAttempts:            kafkaMaxAttempts,
		AllowAutoTopicCreation: false,
	}
}

func newKafkaPublisher(writer messageWriter, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{writer: writer, logger: logger}
}

// PublishAuthEvent writes the event synchronously. The write gives up when ctx ends.
func (p *kafkaPublisher) PublishAuthEvent(ctx context.Context, event *entity.AuthEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for key, value := range attributes {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	msg := kafka.Message{
		Key:     []byte(event.Subject),
		Value:   data,
		Headers: headers,
		Time:    event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "write kafka message")
	}

	p.logger.DebugContext(ctx, "[Kafka] Event published",
		slog.String("event_type", event.Type.String()),
	)

	return nil
}

// Close flushes and closes the writer.
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
