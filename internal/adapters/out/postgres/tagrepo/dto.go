// Package tagrepo provides data transfer objects and mapping functions for tag
// persistence. Tags are shared lookup entities keyed by slug; many orders may
// reference the same tag row through the order_tag join table.
package tagrepo

import (
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/tag"

	"github.com/google/uuid"
)

// TagDTO represents the database structure for persisting tags.
// The slug carries the uniqueness guarantee: two names that slugify to the
// same value resolve to the same row.
type TagDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Slug string `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for tag entities.
// Overrides GORM's default naming convention to use "tags".
func (TagDTO) TableName() string {
	return "tags"
}

// FromDomain converts a tag domain entity to its database representation.
// Exported because the order repository writes join rows against tag DTOs.
func FromDomain(t *tag.Tag) TagDTO {
	return TagDTO{
		ID:   t.ID().Bytes(),
		Name: t.Name(),
		Slug: t.Slug(),
	}
}

// ToDomain converts a database DTO to a tag domain entity.
func ToDomain(dto TagDTO) (*tag.Tag, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return tag.RestoreTag(id, dto.Name, dto.Slug)
}
