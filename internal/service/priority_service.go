package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// PriorityService manages priorities.
type PriorityService interface {
	Create(ctx context.Context, name string, rank int, createdBy string) (*domain.Priority, error)
	List(ctx context.Context) ([]*domain.Priority, error)
	Get(ctx context.Context, id string) (*domain.Priority, error)
	Update(ctx context.Context, id string, patch domain.PriorityPatch) (*domain.Priority, error)
	Delete(ctx context.Context, id string) error
}

type priorityService struct {
	priorities store.PriorityStore
	logger     *slog.Logger
}

var _ PriorityService = (*priorityService)(nil)

// NewPriorityService creates a PriorityService.
func NewPriorityService(priorities store.PriorityStore, logger *slog.Logger) PriorityService {
	if logger == nil {
		logger = slog.Default()
	}
	return &priorityService{
		priorities: priorities,
		logger:     logger.With(slog.String("component", "priority_service")),
	}
}

func (s *priorityService) Create(
	ctx context.Context,
	name string,
	rank int,
	createdBy string,
) (*domain.Priority, error) {
	p, err := domain.NewPriority(name, rank, createdBy)
	if err != nil {
		return nil, fromDomain("create priority", err)
	}
	if err := s.priorities.Create(ctx, p); err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "create priority", "Priority", p.ID, err)
	}
	return p, nil
}

func (s *priorityService) List(ctx context.Context) ([]*domain.Priority, error) {
	list, err := s.priorities.List(ctx)
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "list priorities", "Priority", "", err)
	}
	return list, nil
}

func (s *priorityService) Get(ctx context.Context, id string) (*domain.Priority, error) {
	p, err := s.priorities.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "get priority", "Priority", id, err)
	}
	return p, nil
}

// Update applies patch. A supplied type below 1 is rejected before the store is touched.
func (s *priorityService) Update(
	ctx context.Context,
	id string,
	patch domain.PriorityPatch,
) (*domain.Priority, error) {
	if patch.Type != nil && *patch.Type < 1 {
		return nil, Validation("type", "type must be at least 1", domain.ErrValidation)
	}
	p, err := s.priorities.Update(ctx, id, patch)
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "update priority", "Priority", id, err)
	}
	return p, nil
}

func (s *priorityService) Delete(ctx context.Context, id string) error {
	if err := s.priorities.Delete(ctx, id); err != nil {
		return fromStore(logger.FromContextOrDefault(ctx, s.logger), "delete priority", "Priority", id, err)
	}
	return nil
}
