package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskService manages tasks. Reads return tasks with their references
// expanded; writes return the stored task.
type TaskService interface {
	Create(ctx context.Context, params domain.NewTaskParams) (*domain.Task, error)
	// List returns tasks matching every set field of filter. Soft-deleted tasks are included.
	List(ctx context.Context, filter domain.TaskFilter) ([]*domain.TaskDetail, error)
	Get(ctx context.Context, id string) (*domain.TaskDetail, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	// Complete stamps completedAt, defaulting to now. A task is completed at most once.
	Complete(ctx context.Context, id string, completedAt *time.Time, editedBy string) (*domain.Task, error)
	// Delete soft-deletes the task and returns it.
	Delete(ctx context.Context, id string) (*domain.Task, error)
}

type taskService struct {
	tasks  store.TaskStore
	logger *slog.Logger
	now    func() time.Time
}

var _ TaskService = (*taskService)(nil)

// NewTaskService creates a TaskService.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) TaskService {
	return newTaskService(tasks, logger, time.Now)
}

func newTaskService(tasks store.TaskStore, logger *slog.Logger, now func() time.Time) *taskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &taskService{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
		now:    now,
	}
}

func (s *taskService) Create(ctx context.Context, params domain.NewTaskParams) (*domain.Task, error) {
	t, err := domain.NewTask(params)
	if err != nil {
		return nil, fromDomain("create task", err)
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "create task", "Task", t.ID, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("task created",
		slog.String("task_id", t.ID),
		slog.String("created_by", t.CreatedBy))
	return t, nil
}

func (s *taskService) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.TaskDetail, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, Validation("status", "status is not a known task status", domain.ErrInvalidStatus)
	}
	list, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "list tasks", "Task", "", err)
	}
	return list, nil
}

func (s *taskService) Get(ctx context.Context, id string) (*domain.TaskDetail, error) {
	d, err := s.tasks.GetDetail(ctx, id)
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "get task", "Task", id, err)
	}
	return d, nil
}

func (s *taskService) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, Validation("status", "status is not a known task status", domain.ErrInvalidStatus)
	}
	t, err := s.tasks.Update(ctx, id, patch)
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "update task", "Task", id, err)
	}
	return t, nil
}

func (s *taskService) Complete(
	ctx context.Context,
	id string,
	completedAt *time.Time,
	editedBy string,
) (*domain.Task, error) {
	at := s.now().UTC()
	if completedAt != nil {
		at = completedAt.UTC()
	}

	t, err := s.tasks.Complete(ctx, id, at, editedBy)
	if err != nil {
		if errors.Is(err, domain.ErrTaskAlreadyCompleted) {
			return nil, Validation("completedAt", "Task is already completed", err)
		}
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "complete task", "Task", id, err)
	}
	return t, nil
}

func (s *taskService) Delete(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.SoftDelete(ctx, id, s.now().UTC())
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "delete task", "Task", id, err)
	}
	return t, nil
}
