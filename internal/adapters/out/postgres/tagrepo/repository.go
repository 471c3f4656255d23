package tagrepo

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/tag"

	"gorm.io/gorm"
)

// GormTagRepository implements TagRepository using GORM.
type GormTagRepository struct {
	db *gorm.DB
}

// NewGormTagRepository creates a new GORM tag repository.
func NewGormTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// FindOrCreateBySlug resolves a tag name to a tag entity. The name is
// slugified and looked up; a miss creates a new row with the given name.
// Lookup is by slug only, so "Priority" and "priority" land on one row.
func (r *GormTagRepository) FindOrCreateBySlug(ctx context.Context, name string) (*tag.Tag, error) {
	candidate, err := tag.NewTag(kernel.NewUUID(), name)
	if err != nil {
		return nil, err
	}

	var dto TagDTO
	findErr := r.db.WithContext(ctx).First(&dto, "slug = ?", candidate.Slug()).Error
	if findErr == nil {
		return ToDomain(dto)
	}
	if !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return nil, findErr
	}

	dto = FromDomain(candidate)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return candidate, nil
}
