package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler reads a single order straight from the
// database, bypassing the domain layer. Returns errs.ObjectNotFoundError
// when the number does not resolve to a live order.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the query and assembles the order read model with its tag
// names and line items.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	var resp OrderQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			total_amount
		FROM orders
		WHERE order_number = ? AND deleted_at IS NULL
	`, query.OrderNumber()).Rows()
	if err != nil {
		return OrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderQueryResponse{}, err
		}
		return OrderQueryResponse{}, errs.NewObjectNotFoundError("order_number", query.OrderNumber())
	}

	var id uuid.UUID
	var status string
	if err = rows.Scan(&id, &resp.OrderNumber, &status, &resp.TotalAmount); err != nil {
		return OrderQueryResponse{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return OrderQueryResponse{}, idErr
	}
	resp.ID = orderID

	parsedStatus, statusErr := order.ParseStatus(status)
	if statusErr != nil {
		return OrderQueryResponse{}, statusErr
	}
	resp.Status = parsedStatus

	tags, err := loadTagNames(ctx, h.db, []uuid.UUID{id})
	if err != nil {
		return OrderQueryResponse{}, err
	}
	resp.Tags = tags[id]

	items, err := loadItems(ctx, h.db, []uuid.UUID{id})
	if err != nil {
		return OrderQueryResponse{}, err
	}
	resp.Items = items[id]

	return resp, nil
}

// loadTagNames fetches tag names for the given order IDs in one query,
// keyed by order ID.
func loadTagNames(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	result := make(map[uuid.UUID][]string, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			ot.order_id,
			t.name
		FROM order_tag ot
		JOIN tags t ON t.id = ot.tag_id
		WHERE ot.order_id IN ?
		ORDER BY t.name
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var name string
		if err = rows.Scan(&orderID, &name); err != nil {
			return nil, err
		}
		result[orderID] = append(result[orderID], name)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// loadItems fetches line items for the given order IDs in one query,
// keyed by order ID.
func loadItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderItemResponse, error) {
	result := make(map[uuid.UUID][]OrderItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_name,
			quantity,
			price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY product_name
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item OrderItemResponse
		var price decimal.Decimal
		if err = rows.Scan(&orderID, &item.ProductName, &item.Quantity, &price); err != nil {
			return nil, err
		}
		item.Price = price
		result[orderID] = append(result[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
