// Package http exposes the order tracking operations over a REST API.
// Handlers translate between JSON payloads and application commands/queries;
// no business rules live here.
package http

import (
	"errors"
	"net/http"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	getOrderHandler   queries.GetOrderByNumberQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderByNumberQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		updateOrderHandler: updateOrderHandler,
		deleteOrderHandler: deleteOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
	}
}

// RegisterRoutes attaches the API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:order_number", s.GetOrder)
	api.PUT("/orders/:order_number", s.UpdateOrder)
	api.DELETE("/orders/:order_number", s.DeleteOrder)
}

type itemPayload struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type createOrderRequest struct {
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Tags        []string        `json:"tags"`
	Items       []itemPayload   `json:"items"`
}

type updateOrderRequest struct {
	Status *string  `json:"status"`
	Tags   []string `json:"tags"`
}

type orderResponse struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Tags        []string        `json:"tags"`
	Items       []itemPayload   `json:"items"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if fieldErrs := validateCreateRequest(req); len(fieldErrs) > 0 {
		return unprocessable(ctx, fieldErrs)
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemInput{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(req.OrderNumber, req.TotalAmount, req.Tags, items)
	if err != nil {
		return unprocessable(ctx, map[string][]string{"order": {err.Error()}})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrOrderNumberAlreadyTaken) {
			return unprocessable(ctx, map[string][]string{
				"order_number": {"The order number has already been taken."},
			})
		}
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, domainToResponse(created))
}

// GetOrder handles GET /api/orders/:order_number.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderByNumberQuery(ctx.Param("order_number"))
	if err != nil {
		return unprocessable(ctx, map[string][]string{"order_number": {err.Error()}})
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx)
		}
		return internalError(ctx, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, queryToResponse(resp))
}

// ListOrders handles GET /api/orders with optional status/tag filters and
// pagination.
func (s *Server) ListOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return unprocessable(ctx, map[string][]string{"status": {"The selected status is invalid."}})
		}
		statusFilter = &parsed
	}

	page := intQueryParam(ctx, "page", 1)
	pageSize := intQueryParam(ctx, "per_page", queries.DefaultPageSize)

	query := queries.NewListOrdersQuery(statusFilter, ctx.QueryParam("tag"), page, pageSize)

	resp, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	orders := make([]orderResponse, 0, len(resp.Orders))
	for _, o := range resp.Orders {
		orders = append(orders, queryToResponse(o))
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"data":     orders,
		"page":     resp.Page,
		"per_page": resp.PageSize,
		"total":    resp.Total,
	})
}

// UpdateOrder handles PUT /api/orders/:order_number.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	var req updateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var statusValue *order.Status
	if req.Status != nil {
		parsed, err := order.ParseStatus(*req.Status)
		if err != nil {
			return unprocessable(ctx, map[string][]string{"status": {"The selected status is invalid."}})
		}
		statusValue = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(ctx.Param("order_number"), statusValue, req.Tags)
	if err != nil {
		return unprocessable(ctx, map[string][]string{"order": {err.Error()}})
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx)
		}
		return internalError(ctx, "Failed to update order")
	}

	return ctx.JSON(http.StatusOK, domainToResponse(updated))
}

// DeleteOrder handles DELETE /api/orders/:order_number.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("order_number"))
	if err != nil {
		return unprocessable(ctx, map[string][]string{"order_number": {err.Error()}})
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx)
		}
		return internalError(ctx, "Failed to delete order")
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Order deleted"})
}

func validateCreateRequest(req createOrderRequest) map[string][]string {
	fieldErrs := make(map[string][]string)

	if req.OrderNumber == "" {
		fieldErrs["order_number"] = append(fieldErrs["order_number"], "The order number field is required.")
	}
	if req.TotalAmount.IsNegative() {
		fieldErrs["total_amount"] = append(fieldErrs["total_amount"], "The total amount must be at least 0.")
	}
	for _, item := range req.Items {
		if item.ProductName == "" {
			fieldErrs["items.product_name"] = append(fieldErrs["items.product_name"],
				"The product name field is required.")
		}
		if item.Quantity < 1 {
			fieldErrs["items.quantity"] = append(fieldErrs["items.quantity"],
				"The quantity must be at least 1.")
		}
		if item.Price.IsNegative() {
			fieldErrs["items.price"] = append(fieldErrs["items.price"],
				"The price must be at least 0.")
		}
	}

	return fieldErrs
}

func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			return fallback
		}
		value = value*10 + int(r-'0')
	}
	if value == 0 {
		return fallback
	}
	return value
}

func domainToResponse(aggregate *order.Order) orderResponse {
	tags := make([]string, 0, len(aggregate.Tags()))
	for _, t := range aggregate.Tags() {
		tags = append(tags, t.Name())
	}

	items := make([]itemPayload, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemPayload{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
		})
	}

	return orderResponse{
		ID:          aggregate.ID().String(),
		OrderNumber: aggregate.OrderNumber(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		Tags:        tags,
		Items:       items,
	}
}

func queryToResponse(resp queries.OrderQueryResponse) orderResponse {
	items := make([]itemPayload, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, itemPayload{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	tags := resp.Tags
	if tags == nil {
		tags = make([]string, 0)
	}

	return orderResponse{
		ID:          resp.ID.String(),
		OrderNumber: resp.OrderNumber,
		Status:      resp.Status.String(),
		TotalAmount: resp.TotalAmount,
		Tags:        tags,
		Items:       items,
	}
}

func unprocessable(ctx echo.Context, fieldErrs map[string][]string) error {
	return ctx.JSON(http.StatusUnprocessableEntity, validationErrorResponse{
		Message: "The given data was invalid.",
		Errors:  fieldErrs,
	})
}

func notFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, errorResponse{
		Code:    http.StatusNotFound,
		Message: "Order not found",
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
