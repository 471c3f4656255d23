package commands

import (
	"context"
	"errors"
	"fmt"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// ErrOrderNumberAlreadyTaken is returned when the requested order number is
// already used by a live order.
var ErrOrderNumberAlreadyTaken = errors.New("order number is already taken")

// CreateOrderCommandHandler registers new orders. Creation is fully
// transactional: the order row, its line items and its tag associations
// commit together or not at all. No transition is emitted on creation; the
// initial pending status is a starting point, not a change.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the order creation command.
//
// Order numbers are unique among live orders: a duplicate yields
// ErrOrderNumberAlreadyTaken. Tag names are resolved find-or-create by slug
// inside the same transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), cmd.OrderNumber(), cmd.TotalAmount(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	exists, err := orderRepo.ExistsByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrOrderNumberAlreadyTaken, cmd.OrderNumber())
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if names := cmd.TagNames(); len(names) > 0 {
		tags, tagErr := resolveTagNames(ctx, uow.TagRepository(), names)
		if tagErr != nil {
			return nil, tagErr
		}
		if err = orderRepo.ReplaceTags(ctx, aggregate, tags); err != nil {
			return nil, err
		}
		aggregate.ReplaceTags(tags)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func buildItems(inputs []ItemInput) ([]order.Item, error) {
	items := make([]order.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := order.NewItem(input.ProductName, input.Quantity, input.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
