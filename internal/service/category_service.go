package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// CategoryService manages categories.
type CategoryService interface {
	Create(ctx context.Context, name, createdBy string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	// Update renames the category and records editedBy as its last editor.
	Update(ctx context.Context, id string, name *string, editedBy string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	categories store.CategoryStore
	logger     *slog.Logger
}

var _ CategoryService = (*categoryService)(nil)

// NewCategoryService creates a CategoryService.
func NewCategoryService(categories store.CategoryStore, logger *slog.Logger) CategoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &categoryService{
		categories: categories,
		logger:     logger.With(slog.String("component", "category_service")),
	}
}

func (s *categoryService) Create(ctx context.Context, name, createdBy string) (*domain.Category, error) {
	c, err := domain.NewCategory(name, createdBy)
	if err != nil {
		return nil, fromDomain("create category", err)
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "create category", "Category", c.ID, err)
	}
	return c, nil
}

func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "list categories", "Category", "", err)
	}
	return list, nil
}

func (s *categoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "get category", "Category", id, err)
	}
	return c, nil
}

func (s *categoryService) Update(
	ctx context.Context,
	id string,
	name *string,
	editedBy string,
) (*domain.Category, error) {
	c, err := s.categories.Update(ctx, id, domain.CategoryPatch{Name: name, EditedBy: editedBy})
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "update category", "Category", id, err)
	}
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return fromStore(logger.FromContextOrDefault(ctx, s.logger), "delete category", "Category", id, err)
	}
	return nil
}
