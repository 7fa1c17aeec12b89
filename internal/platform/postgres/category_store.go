package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

const categoryColumns = "id, name, created_by, edited_by, created_at, updated_at"

// PostgresCategoryStore implements store.CategoryStore.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a category store over db. A nil logger uses the default.
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// Create implements store.CategoryStore.Create.
func (s *PostgresCategoryStore) Create(ctx context.Context, c *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query, args, err := psql.Insert("categories").
		Columns("id", "name", "created_by", "edited_by", "created_at", "updated_at").
		Values(c.ID, c.Name, c.CreatedBy, c.EditedBy, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build category insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to create category", slog.String("error", err.Error()), slog.String("category_id", c.ID))
		return store.NewStoreError("category", "create", "failed to insert category", MapError(err))
	}

	log.Info("category created", slog.String("category_id", c.ID))
	return nil
}

// GetByID implements store.CategoryStore.GetByID.
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query, args, err := psql.Select(categoryColumns).From("categories").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build category query: %w", err)
	}

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, store.ErrCategoryNotFound)
	}
	return c, nil
}

// List implements store.CategoryStore.List.
func (s *PostgresCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	query, args, err := psql.Select(categoryColumns).From("categories").OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build category list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list categories", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, MapError(err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return categories, nil
}

// Update implements store.CategoryStore.Update.
func (s *PostgresCategoryStore) Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	b := psql.Update("categories").
		Set("edited_by", patch.EditedBy).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + categoryColumns)
	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build category update: %w", err)
	}

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = notFoundOr(err, store.ErrCategoryNotFound)
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to update category",
				slog.String("error", err.Error()), slog.String("category_id", id))
		}
		return nil, err
	}
	return c, nil
}

// Delete implements store.CategoryStore.Delete.
func (s *PostgresCategoryStore) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("categories").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build category delete: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete category",
			slog.String("error", err.Error()), slog.String("category_id", id))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// Exists implements store.CategoryStore.Exists.
func (s *PostgresCategoryStore) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, s.db, "categories", id)
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedBy, &c.EditedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
