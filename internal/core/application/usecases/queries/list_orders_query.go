package queries

import (
	"ordertrack/internal/core/domain/model/order"
)

// DefaultPageSize is the number of orders returned per page when the caller
// does not ask for a specific page size.
const DefaultPageSize = 15

// MaxPageSize caps the page size a caller may request.
const MaxPageSize = 100

// ListOrdersQuery retrieves a page of orders, optionally narrowed by status
// and by tag. The tag filter matches either the tag's slug or its display
// name. Soft-deleted orders are never listed.
//
// Example:
//
//	status := order.Shipped
//	query := NewListOrdersQuery(&status, "priority", 1, 0)
//
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	status    order.Status
	hasStatus bool
	tag       string
	page      int
	pageSize  int
}

// NewListOrdersQuery creates a query for a page of orders.
// A nil status and an empty tag mean no filtering. Page numbers start at 1;
// values below 1 are normalized to 1. A pageSize of 0 or below uses
// DefaultPageSize, and requests above MaxPageSize are clamped.
func NewListOrdersQuery(status *order.Status, tag string, page int, pageSize int) ListOrdersQuery {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	query := ListOrdersQuery{
		tag:      tag,
		page:     page,
		pageSize: pageSize,
	}

	if status != nil {
		query.status = *status
		query.hasStatus = true
	}

	return query
}

// Validate checks the optional status filter.
func (q ListOrdersQuery) Validate() error {
	if q.hasStatus {
		return q.status.Validate()
	}
	return nil
}

// Status returns the status filter and whether one was provided.
func (q ListOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasStatus
}

// Tag returns the tag filter, empty when not filtering by tag.
func (q ListOrdersQuery) Tag() string {
	return q.tag
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// ListOrdersQueryResponse is one page of order read models together with the
// paging metadata needed to render navigation.
type ListOrdersQueryResponse struct {
	Orders   []OrderQueryResponse
	Page     int
	PageSize int
	Total    int64
}
