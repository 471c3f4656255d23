// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
		"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// GetOrderByNumberQuery retrieves one order by its opaque order number.
// Soft-deleted orders are not found.
//
// Example:
//
//	query, err := NewGetOrderByNumberQuery("ORD-1001")
//	if err != nil {
//	    return fmt.Errorf("invalid order number: %w", err)
//	}
//
//	resp, err := handler.Handle(ctx, query)
type GetOrderByNumberQuery struct {
	orderNumber string
}

// NewGetOrderByNumberQuery creates a query to fetch a single order.
func NewGetOrderByNumberQuery(orderNumber string) (GetOrderByNumberQuery, error) {
	if orderNumber == "" {
		return GetOrderByNumberQuery{}, ErrOrderNumberIsRequired
	}
	return GetOrderByNumberQuery{orderNumber: orderNumber}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByNumberQueryIsNotConstructed if validation fails.
func (q GetOrderByNumberQuery) Validate() error {
	if q.orderNumber == "" {
		return ErrGetOrderByNumberQueryIsNotConstructed
	}
	return nil
}

// OrderNumber returns the order number to look up.
func (q GetOrderByNumberQuery) OrderNumber() string {
	return q.orderNumber
}

// OrderItemResponse represents one line item in a read model.
type OrderItemResponse struct {
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// OrderQueryResponse is the read model for a single order, including its
// current tag names and line items.
type OrderQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	Status      order.Status
	TotalAmount decimal.Decimal
	Tags        []string
	Items       []OrderItemResponse
}
