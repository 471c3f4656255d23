// Package tag contains the Tag entity shared between orders.
// Tags are identified by a slug derived from their name and are created
// lazily on first use, then reused across orders.
package tag

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"

	"github.com/gosimple/slug"
)

var (
	// ErrTagIsNotConstructed is returned when a Tag instance was not created
	// through NewTag or RestoreTag.
	ErrTagIsNotConstructed = errors.New("Tag must be created via NewTag or RestoreTag constructor")

	// ErrNameIsRequired is returned when a tag name is empty.
	ErrNameIsRequired = errors.New("tag name is required")
)

// Tag is an entity shared many-to-many with orders. Its slug is the unique
// key: lowercase, hyphenated, derived from the name. Two names producing the
// same slug refer to the same tag.
type Tag struct {
	id   kernel.UUID
	name string
	slug string

	isConstructed bool
}

// NewTag creates a tag from a display name, deriving its slug.
// Returns an error when the id is invalid or the name is empty.
func NewTag(id kernel.UUID, name string) (*Tag, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Tag{
		id:            id,
		name:          name,
		slug:          slug.Make(name),
		isConstructed: true,
	}, nil
}

// RestoreTag reconstructs a tag from persistence, keeping the stored slug.
func RestoreTag(id kernel.UUID, name, slugValue string) (*Tag, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Tag{
		id:            id,
		name:          name,
		slug:          slugValue,
		isConstructed: true,
	}, nil
}

// Slugify derives the unique slug for a tag name without creating a tag.
// Lookup and creation must agree on this derivation.
func Slugify(name string) string {
	return slug.Make(name)
}

// Validate ensures the Tag instance was properly constructed.
func (t *Tag) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTagIsNotConstructed
	}
	return nil
}

// ID returns the tag's unique identifier.
func (t *Tag) ID() kernel.UUID {
	return t.id
}

// Name returns the tag's display name.
func (t *Tag) Name() string {
	return t.name
}

// Slug returns the tag's unique slug.
func (t *Tag) Slug() string {
	return t.slug
}

// IsEqual compares two tags by their unique identifiers.
func (t *Tag) IsEqual(other *Tag) bool {
	return other != nil && t.id.IsEqual(other.id)
}
