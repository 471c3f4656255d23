package commands

import (
	"errors"

	"ordertrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTotalAmountIsNegative = errors.New("total amount must not be negative")
)

// ItemInput carries the line item fields accepted at order creation.
// Field-level validation happens when the domain item is constructed.
type ItemInput struct {
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// CreateOrderCommand represents a request to register a new order.
// The order starts in pending status; tags and items are optional.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ORD-1001", decimal.NewFromFloat(99.90),
//	    []string{"priority"}, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	totalAmount decimal.Decimal
	tags        []string
	items       []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order number is not empty and the total amount is not
// negative.
func NewCreateOrderCommand(
	orderNumber string,
	totalAmount decimal.Decimal,
	tags []string,
	items []ItemInput,
) (CreateOrderCommand, error) {
	if orderNumber == "" {
		return CreateOrderCommand{}, ErrOrderNumberIsRequired
	}
	if totalAmount.IsNegative() {
		return CreateOrderCommand{}, ErrTotalAmountIsNegative
	}

	return CreateOrderCommand{
		orderNumber: orderNumber,
		totalAmount: totalAmount,
		tags:        tags,
		items:       items,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderNumber returns the opaque business identifier for the new order.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// TotalAmount returns the monetary total for the new order.
func (c CreateOrderCommand) TotalAmount() decimal.Decimal {
	return c.totalAmount
}

// TagNames returns the tag names to attach at creation, if any.
func (c CreateOrderCommand) TagNames() []string {
	return c.tags
}

// Items returns the line item inputs, if any.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}
