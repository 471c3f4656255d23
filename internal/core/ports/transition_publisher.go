package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
)

// TransitionPublisher hands a committed status transition to the
// asynchronous notification path. Publishing is fire-and-forget from the
// pipeline's perspective: delivery, retries and terminal failure handling
// happen on the consumer side.
type TransitionPublisher interface {
	Publish(ctx context.Context, transition order.StatusTransition) error
}
