package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// PriorityStore defines the interface for priority persistence.
// Its contract mirrors CategoryStore.
type PriorityStore interface {
	Create(ctx context.Context, priority *domain.Priority) error
	GetByID(ctx context.Context, id string) (*domain.Priority, error)
	List(ctx context.Context) ([]*domain.Priority, error)
	Update(ctx context.Context, id string, patch domain.PriorityPatch) (*domain.Priority, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
