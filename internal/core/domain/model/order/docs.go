// Package order contains the Order aggregate and its supporting value objects.
//
// The aggregate root is Order, which owns its line items exclusively and
// shares tags with other orders. Status models the four-value lifecycle
// (pending, shipped, delivered, canceled) and StatusTransition is the
// transient record emitted when a status change is observed.
//
// Status is mutated only through Order.ChangeStatus, which reports whether
// the value actually changed; downstream reconciliation and notification
// fan-out key off that flag.
package order
