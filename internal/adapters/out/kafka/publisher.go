// Package kafka implements the outbound transition publisher on top of a
// sarama synchronous producer.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"ordertrack/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

// DefaultTopic is the topic transition messages are published to.
const DefaultTopic = "order.status.transitions"

// TransitionPublisher publishes status transitions to Kafka.
// Messages are keyed by order number so transitions for one order stay in
// order within a partition. Implements ports.TransitionPublisher.
type TransitionPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewTransitionPublisher creates a publisher against the given brokers.
// The producer waits for all in-sync replicas and is idempotent, so a
// publish that returns nil is durably written exactly once.
func NewTransitionPublisher(brokers []string, topic string, logger *slog.Logger) (*TransitionPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return newTransitionPublisher(producer, topic, logger), nil
}

func newTransitionPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *TransitionPublisher {
	if topic == "" {
		topic = DefaultTopic
	}

	return &TransitionPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "transition_publisher"),
	}
}

// Publish sends one transition message and waits for broker acknowledgement.
func (p *TransitionPublisher) Publish(ctx context.Context, transition order.StatusTransition) error {
	payload, err := json.Marshal(transition)
	if err != nil {
		return fmt.Errorf("failed to marshal transition: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(transition.OrderNumber),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send transition message: %w", err)
	}

	p.logger.DebugContext(ctx, "Transition published",
		"topic", p.topic,
		"order_number", transition.OrderNumber,
		"partition", partition,
		"offset", offset)

	return nil
}

// Close releases the underlying producer.
func (p *TransitionPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}
