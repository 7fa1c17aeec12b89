package store

import (
	"context"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Soft-deleted tasks are returned by every read.
type TaskStore interface {
	Create(ctx context.Context, task *domain.Task) error

	// GetDetail returns the task with its references expanded.
	// Returns ErrTaskNotFound if absent.
	GetDetail(ctx context.Context, id string) (*domain.TaskDetail, error)

	// List returns expanded tasks matching every field set in filter, newest first.
	List(ctx context.Context, filter domain.TaskFilter) ([]*domain.TaskDetail, error)

	// Update applies patch and returns the updated task. Null nullable fields are cleared.
	// Returns ErrTaskNotFound if absent.
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)

	// Complete sets completedAt if it is not already set.
	// Returns domain.ErrTaskAlreadyCompleted if it is, ErrTaskNotFound if the task is absent.
	Complete(ctx context.Context, id string, completedAt time.Time, editedBy string) (*domain.Task, error)

	// SoftDelete flags the task as deleted. The first deletion timestamp is kept.
	// Returns ErrTaskNotFound if absent.
	SoftDelete(ctx context.Context, id string, at time.Time) (*domain.Task, error)
}
