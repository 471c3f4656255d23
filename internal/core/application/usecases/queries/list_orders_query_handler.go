package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders from the database.
// Filters and pagination run in SQL; tag names and line items for the page
// are batch-loaded afterwards.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of orders sorted by order
// number, with the total count of orders matching the filters.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := "o.deleted_at IS NULL"
	args := make([]any, 0, 3)

	if status, ok := query.Status(); ok {
		where += " AND o.status = ?"
		args = append(args, status.String())
	}

	if tag := query.Tag(); tag != "" {
		where += ` AND EXISTS (
			SELECT 1
			FROM order_tag ot
			JOIN tags t ON t.id = ot.tag_id
			WHERE ot.order_id = o.id AND (t.slug = ? OR t.name = ?)
		)`
		args = append(args, tag, tag)
	}

	var total int64
	countRow := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM orders o WHERE "+where, args...,
	).Row()
	if err := countRow.Scan(&total); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	resp := ListOrdersQueryResponse{
		Orders:   make([]OrderQueryResponse, 0, query.PageSize()),
		Page:     query.Page(),
		PageSize: query.PageSize(),
		Total:    total,
	}

	pageArgs := append(args, query.PageSize(), (query.Page()-1)*query.PageSize())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.status,
			o.total_amount
		FROM orders o
		WHERE `+where+`
		ORDER BY o.order_number
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0, query.PageSize())

	for rows.Next() {
		var orderResp OrderQueryResponse
		var id uuid.UUID
		var status string

		if err = rows.Scan(&id, &orderResp.OrderNumber, &status, &orderResp.TotalAmount); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		orderResp.ID = orderID

		parsedStatus, statusErr := order.ParseStatus(status)
		if statusErr != nil {
			return ListOrdersQueryResponse{}, statusErr
		}
		orderResp.Status = parsedStatus

		ids = append(ids, id)
		resp.Orders = append(resp.Orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	tagNames, err := loadTagNames(ctx, h.db, ids)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	items, err := loadItems(ctx, h.db, ids)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	for i, id := range ids {
		resp.Orders[i].Tags = tagNames[id]
		resp.Orders[i].Items = items[id]
	}

	return resp, nil
}
