package commands

import (
	"errors"

	"ordertrack/internal/pkg/guard"
)

// ErrDeleteOrderCommandIsNotConstructed is returned when a DeleteOrderCommand
// was not created through its constructor.
var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand requests a soft delete of one order by its number.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to soft-delete an order.
func NewDeleteOrderCommand(orderNumber string) (DeleteOrderCommand, error) {
	if orderNumber == "" {
		return DeleteOrderCommand{}, ErrOrderNumberIsRequired
	}

	return DeleteOrderCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderNumber returns the business identifier of the order to delete.
func (c DeleteOrderCommand) OrderNumber() string {
	return c.orderNumber
}
