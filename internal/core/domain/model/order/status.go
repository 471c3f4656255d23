package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Orders start as Pending and may move between any of the four states;
// the authoritative sequencing lives outside this service, so no
// transition matrix is enforced here beyond membership in the valid set.
//
// Status is a value object stored as its lowercase string form, which is
// also the wire format used by the external status API.
type Status string

const (
	// Pending is the initial status assigned when an order is created.
	Pending Status = "pending"

	// Shipped indicates the order has left the warehouse.
	Shipped Status = "shipped"

	// Delivered indicates the order has reached the customer.
	Delivered Status = "delivered"

	// Canceled indicates the order was canceled.
	Canceled Status = "canceled"
)

// Statuses returns all valid statuses in declaration order.
func Statuses() []Status {
	return []Status{Pending, Shipped, Delivered, Canceled}
}

// getStatusLabels returns human-readable labels keyed by status,
// used for notification subjects.
func getStatusLabels() map[Status]string {
	return map[Status]string{
		Pending:   "Pending",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

// ParseStatus converts a raw string into a Status.
// Returns an error when the string is not one of the four valid statuses.
// Used to validate status values arriving from API requests and from the
// external status authority.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the four valid statuses.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	switch s {
	case Pending, Shipped, Delivered, Canceled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String returns the lowercase wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Label returns the human-readable name of the status, falling back to the
// raw string for values outside the valid set.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return string(s)
}
