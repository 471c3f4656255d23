package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
)

// StatusReconciler consults the external order-status authority.
//
// The transition pipeline treats the authority as advisory before the fact
// and authoritative after it: a failed health probe or a failed
// reconciliation never blocks a local status update, but a successful
// reconciliation may override the locally assigned status.
type StatusReconciler interface {
	// Healthy probes the authority's liveness endpoint with a bounded
	// timeout. Any transport error or non-success response yields false;
	// Healthy never returns an error to the caller.
	Healthy(ctx context.Context) bool

	// Reconcile reports the order's current status to the authority and
	// returns the status the authority settles on. An error means the
	// response was unusable (transport failure, non-success, missing or
	// invalid status); implementations log failure detail before returning.
	Reconcile(ctx context.Context, aggregate *order.Order) (order.Status, error)
}
