package orderrepo

import (
	"context"
	"errors"

	"ordertrack/internal/adapters/out/postgres/tagrepo"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/tag"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items to the database.
// Tag associations are written separately via ReplaceTags.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the order's current status. Status is the only field that
// changes after creation; items and number are fixed, tags go through
// ReplaceTags.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByNumber retrieves an order by its order number with tags and items
// loaded. Soft-deleted orders are not found.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	return r.getByNumber(ctx, orderNumber, false)
}

// GetByNumberForUpdate retrieves an order by its order number holding a
// row-level lock until the surrounding transaction ends. Concurrent updates
// to the same order serialize on this lock.
func (r *GormOrderRepository) GetByNumberForUpdate(ctx context.Context, orderNumber string) (*order.Order, error) {
	return r.getByNumber(ctx, orderNumber, true)
}

func (r *GormOrderRepository) getByNumber(ctx context.Context, orderNumber string, forUpdate bool) (*order.Order, error) {
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}

	query := r.db.WithContext(ctx).Preload("Items").Preload("Tags")
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order_number", orderNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByNumber reports whether a live order with the given number exists.
func (r *GormOrderRepository) ExistsByNumber(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_number = ?", orderNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ReplaceTags synchronizes the order's persisted tag set to exactly the given
// tags. Join rows are replaced wholesale; tag rows themselves are untouched.
func (r *GormOrderRepository) ReplaceTags(ctx context.Context, aggregate *order.Order, tags []tag.Tag) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := OrderDTO{ID: aggregate.ID().Bytes()}
	tagDTOs := make([]tagrepo.TagDTO, 0, len(tags))
	for i := range tags {
		tagDTOs = append(tagDTOs, tagrepo.FromDomain(&tags[i]))
	}

	err := r.db.WithContext(ctx).
		Model(&dto).
		Omit("Tags.*").
		Association("Tags").
		Replace(&tagDTOs)
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete soft-deletes the order. The row and its item and tag associations
// stay behind, but every read path stops seeing them.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", aggregate.ID().Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
