package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusTransition records one observed change of an order's status. It is
// the payload published to the transitions topic and consumed by the
// notification dispatcher; it is not persisted on its own.
type StatusTransition struct {
	OrderID        string          `json:"order_id"`
	OrderNumber    string          `json:"order_number"`
	PreviousStatus Status          `json:"previous_status"`
	NewStatus      Status          `json:"new_status"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

// NewStatusTransition builds a transition record from an order's final state
// and the status it held before the change.
func NewStatusTransition(o *Order, previous Status) StatusTransition {
	return StatusTransition{
		OrderID:        o.ID().String(),
		OrderNumber:    o.OrderNumber(),
		PreviousStatus: previous,
		NewStatus:      o.Status(),
		TotalAmount:    o.TotalAmount(),
		OccurredAt:     time.Now().UTC(),
	}
}
