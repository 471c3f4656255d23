package order

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductNameIsRequired is returned when an item has no product name.
	ErrProductNameIsRequired = errors.New("product name is required")

	// ErrQuantityIsInvalid is returned when an item quantity is not positive.
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")

	// ErrPriceIsNegative is returned when an item price is negative.
	ErrPriceIsNegative = errors.New("price must not be negative")
)

// Item is a line item owned exclusively by one order. Items are created at
// order-creation time and are immutable afterwards.
type Item struct {
	id          kernel.UUID
	productName string
	quantity    int
	price       decimal.Decimal
}

// NewItem creates a line item with a fresh identifier.
// Quantity must be positive and price non-negative.
func NewItem(productName string, quantity int, price decimal.Decimal) (Item, error) {
	return RestoreItem(kernel.NewUUID(), productName, quantity, price)
}

// RestoreItem reconstructs a line item from persistence.
func RestoreItem(id kernel.UUID, productName string, quantity int, price decimal.Decimal) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, ErrProductNameIsRequired
	}
	if quantity <= 0 {
		return Item{}, ErrQuantityIsInvalid
	}
	if price.IsNegative() {
		return Item{}, ErrPriceIsNegative
	}

	return Item{
		id:          id,
		productName: productName,
		quantity:    quantity,
		price:       price,
	}, nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductName returns the name of the ordered product.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the per-unit price with two decimal places.
func (i Item) Price() decimal.Decimal {
	return i.price
}
