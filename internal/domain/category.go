package domain

import (
	"strings"
	"time"
)

// Category groups tasks. It records who created it and who last edited it.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"createdBy"`
	EditedBy  *string   `json:"editedBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCategory creates a Category owned by createdBy.
func NewCategory(name, createdBy string) (*Category, error) {
	now := time.Now().UTC()
	c := &Category{
		ID:        NewID(),
		Name:      strings.TrimSpace(name),
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if !IsValidID(c.ID) {
		return NewValidationError("id", "must be a 24 character hex string", ErrInvalidID)
	}
	if c.Name == "" {
		return NewValidationError("name", "cannot be empty", nil)
	}
	if !IsValidID(c.CreatedBy) {
		return NewValidationError("createdBy", "must be a 24 character hex string", ErrInvalidID)
	}
	return nil
}

// CategoryPatch is a sparse category update. EditedBy is always recorded.
type CategoryPatch struct {
	Name     *string
	EditedBy string
}

// CategorySummary is the subset of a category embedded in task reads.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}
