package domain

import (
	"strings"
	"time"
)

// Priority is a named rank tasks can point at. Type orders priorities; 1 is the first rank.
type Priority struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      int       `json:"type"`
	CreatedBy string    `json:"createdBy"`
	EditedBy  *string   `json:"editedBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewPriority creates a Priority owned by createdBy.
func NewPriority(name string, rank int, createdBy string) (*Priority, error) {
	now := time.Now().UTC()
	p := &Priority{
		ID:        NewID(),
		Name:      strings.TrimSpace(name),
		Type:      rank,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks if the Priority has valid data.
func (p *Priority) Validate() error {
	if !IsValidID(p.ID) {
		return NewValidationError("id", "must be a 24 character hex string", ErrInvalidID)
	}
	if p.Name == "" {
		return NewValidationError("name", "cannot be empty", nil)
	}
	if p.Type < 1 {
		return NewValidationError("type", "must be at least 1", nil)
	}
	if !IsValidID(p.CreatedBy) {
		return NewValidationError("createdBy", "must be a 24 character hex string", ErrInvalidID)
	}
	return nil
}

// PriorityPatch is a sparse priority update.
type PriorityPatch struct {
	Name     *string
	Type     *int
	EditedBy string
}

// PrioritySummary is the subset of a priority embedded in task reads.
type PrioritySummary struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Type int    `json:"type,omitempty"`
}
