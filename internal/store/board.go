package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// BoardStore defines the interface for board persistence.
type BoardStore interface {
	Create(ctx context.Context, board *domain.Board) error

	// GetByID returns ErrBoardNotFound if the board does not exist.
	GetByID(ctx context.Context, id string) (*domain.Board, error)

	// List returns every board, newest first.
	List(ctx context.Context) ([]*domain.Board, error)

	// Update applies patch and returns the updated board. A null description is cleared.
	Update(ctx context.Context, id string, patch domain.BoardPatch) (*domain.Board, error)

	// Delete permanently removes the board. Tasks that reference it are left untouched.
	Delete(ctx context.Context, id string) error

	Exists(ctx context.Context, id string) (bool, error)
}
