package domain

import (
	"strings"
	"time"
)

// BoardStatus is the lifecycle state of a board.
type BoardStatus string

const (
	BoardStatusOpen       BoardStatus = "Open"
	BoardStatusInProgress BoardStatus = "In Progress"
	BoardStatusClosed     BoardStatus = "Closed"
)

// Valid reports whether s is one of the known board statuses.
func (s BoardStatus) Valid() bool {
	switch s {
	case BoardStatusOpen, BoardStatusInProgress, BoardStatusClosed:
		return true
	}
	return false
}

// Board collects tasks. Deleting a board does not touch tasks that reference it.
type Board struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Status      BoardStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// NewBoard creates a Board. An empty status defaults to Open.
func NewBoard(name string, description *string, status BoardStatus) (*Board, error) {
	if status == "" {
		status = BoardStatusOpen
	}
	now := time.Now().UTC()
	b := &Board{
		ID:          NewID(),
		Name:        strings.TrimSpace(name),
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks if the Board has valid data.
func (b *Board) Validate() error {
	if !IsValidID(b.ID) {
		return NewValidationError("id", "must be a 24 character hex string", ErrInvalidID)
	}
	if b.Name == "" {
		return NewValidationError("name", "cannot be empty", nil)
	}
	if !b.Status.Valid() {
		return NewValidationError("status", "must be one of Open, In Progress, Closed", ErrInvalidStatus)
	}
	return nil
}

// BoardPatch is a sparse board update. A null Description clears it.
type BoardPatch struct {
	Name        *string
	Description Nullable[string]
	Status      *BoardStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p BoardPatch) IsEmpty() bool {
	return p.Name == nil && !p.Description.Present && p.Status == nil
}

// BoardSummary is the subset of a board embedded in task reads.
type BoardSummary struct {
	ID     string      `json:"id"`
	Name   string      `json:"name,omitempty"`
	Status BoardStatus `json:"status,omitempty"`
}
