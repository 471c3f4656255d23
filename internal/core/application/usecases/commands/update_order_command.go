package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrNoChangesRequested    = errors.New("at least one of status or tags must be provided")
)

// UpdateOrderCommand requests a change to one order: a new status, a new tag
// set, or both. The tag set is a full replacement, not an append.
//
// Example:
//
//	status := order.Shipped
//	cmd, err := NewUpdateOrderCommand("ORD-1001", &status, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid update: %w", err)
//	}
//
//	updated, err := handler.Handle(ctx, cmd)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	status      order.Status
	hasStatus   bool
	tags        []string
	hasTags     bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order's status and/or
// tag set. A nil status means the status is untouched; a nil or empty tag
// slice means the tag set is untouched. At least one change must be present,
// and a provided status must be one of the four valid values.
func NewUpdateOrderCommand(orderNumber string, status *order.Status, tags []string) (UpdateOrderCommand, error) {
	if orderNumber == "" {
		return UpdateOrderCommand{}, ErrOrderNumberIsRequired
	}
	if status == nil && len(tags) == 0 {
		return UpdateOrderCommand{}, ErrNoChangesRequested
	}

	cmd := UpdateOrderCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateOrderCommand{}, err
		}
		cmd.status = *status
		cmd.hasStatus = true
	}

	if len(tags) > 0 {
		cmd.tags = tags
		cmd.hasTags = true
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderNumber returns the business identifier of the order to update.
func (c UpdateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Status returns the requested status and whether one was provided.
func (c UpdateOrderCommand) Status() (order.Status, bool) {
	return c.status, c.hasStatus
}

// Tags returns the requested tag names and whether a tag set was provided.
func (c UpdateOrderCommand) Tags() ([]string, bool) {
	return c.tags, c.hasTags
}
