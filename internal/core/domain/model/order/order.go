package order

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/tag"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNumberIsRequired is returned when an order number is empty.
	ErrOrderNumberIsRequired = errors.New("order number is required")

	// ErrTotalAmountIsNegative is returned when a total amount is negative.
	ErrTotalAmountIsNegative = errors.New("total amount must not be negative")
)

// Order is the aggregate root tracked by the system. It carries an opaque,
// unique order number, a status from the four-value lifecycle, a monetary
// total with two decimal places, its line items, and a set of shared tags.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Status is always one of the four valid values, defaulting to Pending
//   - Total amount is never negative
//   - Can only be created through NewOrder or RestoreOrder
//
// Status is mutated only through ChangeStatus; the tag set is replaced
// wholesale through ReplaceTags. Line items are fixed at creation time.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the opaque, unique business identifier
	orderNumber string

	// status is the current lifecycle state
	status Status

	// totalAmount is the monetary total, two decimal places
	totalAmount decimal.Decimal

	// items are the line items owned by this order
	items []Item

	// tags is the current tag set shared with other orders
	tags []tag.Tag

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in Pending status.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - orderNumber: opaque business identifier (must not be empty)
//   - totalAmount: monetary total (must not be negative)
//   - items: line items created together with the order (may be empty)
//
// Returns a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, orderNumber string, totalAmount decimal.Decimal, items []Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	order.items = items
	return order, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status,
// items and tags. The status must be one of the four valid values.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	status Status,
	totalAmount decimal.Decimal,
	items []Item,
	tags []tag.Tag,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setStatus(status),
		order.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	order.items = items
	order.tags = tags
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the opaque business identifier.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the monetary total of the order.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Items returns the line items owned by this order.
func (o *Order) Items() []Item {
	return o.items
}

// Tags returns the order's current tag set.
func (o *Order) Tags() []tag.Tag {
	return o.tags
}

// ChangeStatus moves the order to the given status.
//
// Returns:
//   - (true, nil) when the status actually changed
//   - (false, nil) when the new status equals the current one (no-op)
//   - (false, error) when the status is not one of the four valid values
//
// The changed flag is what gates reconciliation and transition emission
// downstream, so a same-value assignment must report false.
func (o *Order) ChangeStatus(status Status) (bool, error) {
	if err := status.Validate(); err != nil {
		return false, err
	}

	if o.status == status {
		return false, nil
	}

	o.status = status
	return true, nil
}

// ReplaceTags replaces the order's full tag set with exactly the given set.
// Tags absent from the new set are detached, even if previously present.
func (o *Order) ReplaceTags(tags []tag.Tag) {
	o.tags = tags
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) setTotalAmount(totalAmount decimal.Decimal) error {
	if totalAmount.IsNegative() {
		return ErrTotalAmountIsNegative
	}

	o.totalAmount = totalAmount
	return nil
}
