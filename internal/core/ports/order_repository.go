package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/tag"
)

// OrderRepository defines the persistence contract for order aggregates.
// All reads exclude soft-deleted orders; deletion is logical and keeps the
// row for audit.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items and
	// tag associations.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Status is the only field mutable after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves an order by its order number with tags and items
	// loaded. Returns errs.ObjectNotFoundError when the number does not
	// resolve to a live order.
	GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	// GetByNumberForUpdate behaves like GetByNumber but takes a row-level
	// lock on the order for the duration of the surrounding transaction,
	// serializing concurrent status updates on the same order.
	GetByNumberForUpdate(ctx context.Context, orderNumber string) (*order.Order, error)

	// ExistsByNumber reports whether a live order with the given number exists.
	ExistsByNumber(ctx context.Context, orderNumber string) (bool, error)

	// ReplaceTags synchronizes the order's persisted tag set to exactly the
	// given tags: missing associations are created, associations to tags
	// outside the set are detached. The tag rows themselves must already
	// exist.
	ReplaceTags(ctx context.Context, aggregate *order.Order, tags []tag.Tag) error

	// Delete soft-deletes the order. Returns errs.ObjectNotFoundError when
	// the order does not exist or was already deleted.
	Delete(ctx context.Context, aggregate *order.Order) error
}
