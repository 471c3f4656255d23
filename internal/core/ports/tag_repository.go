package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/tag"
)

// TagRepository defines the persistence contract for tags.
type TagRepository interface {
	// FindOrCreateBySlug resolves a tag name to a tag entity: the name is
	// slugified, an existing tag with that slug is reused, otherwise a new
	// tag is created. Repeated calls with names producing the same slug
	// return the same tag.
	FindOrCreateBySlug(ctx context.Context, name string) (*tag.Tag, error)
}
