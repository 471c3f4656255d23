package commands

import (
	"context"
	"log/slog"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/tag"
	"ordertrack/internal/core/ports"
)

// UpdateOrderCommandHandler owns the status transition pipeline: it applies a
// requested status/tag change transactionally, reconciles the new status with
// the external authority when that authority is healthy, and emits a single
// transition record for asynchronous notification.
//
// Failure policy, deliberately availability-over-consistency:
//   - an unhealthy external authority skips reconciliation (fail-open)
//   - a failed reconciliation is logged and absorbed, the committed local
//     change stands
//   - a failed transition publish is logged and absorbed
//
// Only an unresolvable order number (and command validation) surface to the
// caller.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	reconciler ports.StatusReconciler
	publisher  ports.TransitionPublisher
	logger     *slog.Logger
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	reconciler ports.StatusReconciler,
	publisher ports.TransitionPublisher,
	logger *slog.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		reconciler: reconciler,
		publisher:  publisher,
		logger:     logger.With("component", "update_order_handler"),
	}
}

// Handle processes the order update command.
//
// Step 1 runs in one transaction: the order is loaded by number under a
// row-level lock, the requested status is applied, and the tag set is
// synchronized (names resolved find-or-create by slug, then the full set
// replaced). Either every write commits or none does.
//
// Step 2 runs post-commit and only when the status actually changed: the
// external authority is consulted (health-gated), its settled status may
// override the local one in a second short transaction, and exactly one
// transition record carrying the original previous status and the final
// settled status is published.
//
// Returns the order in its final persisted state.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetByNumberForUpdate(ctx, cmd.OrderNumber())
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()

	if status, ok := cmd.Status(); ok {
		changed, changeErr := aggregate.ChangeStatus(status)
		if changeErr != nil {
			return nil, changeErr
		}
		if changed {
			if err = orderRepo.Update(ctx, aggregate); err != nil {
				return nil, err
			}
		}
	}

	if names, ok := cmd.Tags(); ok {
		tags, syncErr := resolveTagNames(ctx, uow.TagRepository(), names)
		if syncErr != nil {
			return nil, syncErr
		}
		if err = orderRepo.ReplaceTags(ctx, aggregate, tags); err != nil {
			return nil, err
		}
		aggregate.ReplaceTags(tags)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if aggregate.Status() != previous {
		h.reconcile(ctx, aggregate)

		if final := aggregate.Status(); final != previous {
			transition := order.NewStatusTransition(aggregate, previous)
			if err = h.publisher.Publish(ctx, transition); err != nil {
				h.logger.ErrorContext(ctx, "Failed to publish status transition",
					"order_number", aggregate.OrderNumber(),
					"previous_status", previous.String(),
					"new_status", final.String(),
					"error", err)
			}
		}
	}

	return aggregate, nil
}

// resolveTagNames maps each requested tag name to a tag entity, reusing an
// existing tag with the same slug or creating a new one.
func resolveTagNames(
	ctx context.Context,
	tagRepo ports.TagRepository,
	names []string,
) ([]tag.Tag, error) {
	tags := make([]tag.Tag, 0, len(names))
	for _, name := range names {
		resolved, err := tagRepo.FindOrCreateBySlug(ctx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *resolved)
	}
	return tags, nil
}

// reconcile consults the external status authority after a committed local
// status change. The authority is authoritative post-hoc: a settled status
// differing from the local one is persisted in a second short transaction.
// Every failure in here is logged and absorbed.
func (h UpdateOrderCommandHandler) reconcile(ctx context.Context, aggregate *order.Order) {
	if !h.reconciler.Healthy(ctx) {
		h.logger.WarnContext(ctx, "External order status API is unhealthy, skipping reconciliation",
			"order_id", aggregate.ID().String(),
			"order_number", aggregate.OrderNumber())
		return
	}

	settled, err := h.reconciler.Reconcile(ctx, aggregate)
	if err != nil {
		h.logger.ErrorContext(ctx, "External order status reconciliation failed, keeping local status",
			"order_id", aggregate.ID().String(),
			"order_number", aggregate.OrderNumber(),
			"error", err)
		return
	}

	if settled == aggregate.Status() {
		return
	}

	local := aggregate.Status()
	if _, err = aggregate.ChangeStatus(settled); err != nil {
		h.logger.ErrorContext(ctx, "External order status API settled on an invalid status",
			"order_number", aggregate.OrderNumber(),
			"status", settled.String(),
			"error", err)
		return
	}

	if err = h.persistOverride(ctx, aggregate); err != nil {
		// The local commit stands; revert the in-memory override so the
		// emitted transition matches what is persisted.
		_, _ = aggregate.ChangeStatus(local)
		h.logger.ErrorContext(ctx, "Failed to persist externally settled status, keeping local status",
			"order_number", aggregate.OrderNumber(),
			"settled_status", settled.String(),
			"error", err)
	}
}

func (h UpdateOrderCommandHandler) persistOverride(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
