package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	Create(ctx context.Context, category *domain.Category) error

	// GetByID returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id string) (*domain.Category, error)

	// List returns every category, newest first.
	List(ctx context.Context) ([]*domain.Category, error)

	// Update applies the non-nil fields of patch and returns the updated record.
	// Returns ErrCategoryNotFound if the category does not exist.
	Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error)

	// Delete permanently removes the category.
	// Returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id string) error

	Exists(ctx context.Context, id string) (bool, error)
}
