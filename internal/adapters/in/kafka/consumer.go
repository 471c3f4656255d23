// Package kafka implements the inbound transition consumer. It feeds
// committed status transitions to the notification dispatcher with bounded
// retries; a transition that cannot be delivered is logged and dropped, never
// fed back into order state.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ordertrack/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

const (
	// MaxAttempts is how many times a transition is handed to the
	// dispatcher before it is dropped.
	MaxAttempts = 3

	// AttemptTimeout bounds a single dispatch attempt.
	AttemptTimeout = 60 * time.Second
)

// TransitionHandler processes one consumed status transition.
type TransitionHandler interface {
	Dispatch(ctx context.Context, transition order.StatusTransition) error
}

// TransitionConsumer consumes the transitions topic within a consumer group
// and runs each message through the handler.
type TransitionConsumer struct {
	consumer sarama.ConsumerGroup
	topics   []string
	handler  TransitionHandler
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewTransitionConsumer creates a consumer group member for the given
// brokers, group and topic.
func NewTransitionConsumer(
	brokers []string,
	groupID string,
	topic string,
	handler TransitionHandler,
	logger *slog.Logger,
) (*TransitionConsumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}

	return &TransitionConsumer{
		consumer: consumer,
		topics:   []string{topic},
		handler:  handler,
		logger:   logger.With("component", "transition_consumer"),
	}, nil
}

// Start launches the consume loop. Returns immediately; consumption stops
// when the context is canceled or Stop is called.
func (c *TransitionConsumer) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			// Consume returns on every rebalance and must be re-invoked.
			if err := c.consumer.Consume(ctx, c.topics, c); err != nil {
				c.logger.ErrorContext(ctx, "Consumer session ended with error", "error", err)
			}

			if ctx.Err() != nil {
				return
			}
		}
	}()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for err := range c.consumer.Errors() {
			c.logger.Error("Consumer error", "error", err)
		}
	}()

	c.logger.InfoContext(ctx, "Kafka transition consumer started", "topics", c.topics)
}

// Stop closes the consumer group and waits for the loops to drain.
func (c *TransitionConsumer) Stop() error {
	if err := c.consumer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka consumer: %w", err)
	}
	c.wg.Wait()
	c.logger.Info("Kafka transition consumer stopped")
	return nil
}

// Setup is called when a consumer group session starts.
func (c *TransitionConsumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is called when a consumer group session ends.
func (c *TransitionConsumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim processes messages from one partition claim. Every message is
// marked after processing: exhausted retries drop the notification rather
// than wedging the partition.
func (c *TransitionConsumer) ConsumeClaim(
	session sarama.ConsumerGroupSession,
	claim sarama.ConsumerGroupClaim,
) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			c.handleMessage(session.Context(), message)
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

// handleMessage runs one transition through the dispatcher with bounded
// retries. Terminal failure is logged with the order identity and final
// error; it never propagates.
func (c *TransitionConsumer) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	var transition order.StatusTransition
	if err := json.Unmarshal(message.Value, &transition); err != nil {
		c.logger.ErrorContext(ctx, "Dropping malformed transition message",
			"topic", message.Topic,
			"partition", message.Partition,
			"offset", message.Offset,
			"error", err)
		return
	}

	var lastErr error
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, AttemptTimeout)
		lastErr = c.handler.Dispatch(attemptCtx, transition)
		cancel()

		if lastErr == nil {
			return
		}

		if attempt < MaxAttempts {
			c.logger.WarnContext(ctx, "Notification dispatch failed, will retry",
				"order_number", transition.OrderNumber,
				"attempt", attempt,
				"max_attempts", MaxAttempts,
				"error", lastErr)
		}
	}

	c.logger.ErrorContext(ctx, "Notification dispatch failed permanently",
		"order_number", transition.OrderNumber,
		"previous_status", transition.PreviousStatus.String(),
		"new_status", transition.NewStatus.String(),
		"attempts", MaxAttempts,
		"error", lastErr)
}
