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

const priorityColumns = "id, name, type, created_by, edited_by, created_at, updated_at"

// PostgresPriorityStore implements store.PriorityStore.
type PostgresPriorityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPriorityStore creates a priority store over db. A nil logger uses the default.
func NewPostgresPriorityStore(db store.DBTX, logger *slog.Logger) *PostgresPriorityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresPriorityStore{
		db:     db,
		logger: logger.With(slog.String("component", "priority_store")),
	}
}

var _ store.PriorityStore = (*PostgresPriorityStore)(nil)

// Create implements store.PriorityStore.Create.
func (s *PostgresPriorityStore) Create(ctx context.Context, p *domain.Priority) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query, args, err := psql.Insert("priorities").
		Columns("id", "name", "type", "created_by", "edited_by", "created_at", "updated_at").
		Values(p.ID, p.Name, p.Type, p.CreatedBy, p.EditedBy, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build priority insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to create priority", slog.String("error", err.Error()), slog.String("priority_id", p.ID))
		return store.NewStoreError("priority", "create", "failed to insert priority", MapError(err))
	}

	log.Info("priority created", slog.String("priority_id", p.ID))
	return nil
}

// GetByID implements store.PriorityStore.GetByID.
func (s *PostgresPriorityStore) GetByID(ctx context.Context, id string) (*domain.Priority, error) {
	query, args, err := psql.Select(priorityColumns).From("priorities").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build priority query: %w", err)
	}

	p, err := scanPriority(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, store.ErrPriorityNotFound)
	}
	return p, nil
}

// List implements store.PriorityStore.List.
func (s *PostgresPriorityStore) List(ctx context.Context) ([]*domain.Priority, error) {
	query, args, err := psql.Select(priorityColumns).From("priorities").OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build priority list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list priorities", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	priorities := make([]*domain.Priority, 0)
	for rows.Next() {
		p, err := scanPriority(rows)
		if err != nil {
			return nil, MapError(err)
		}
		priorities = append(priorities, p)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return priorities, nil
}

// Update implements store.PriorityStore.Update.
func (s *PostgresPriorityStore) Update(ctx context.Context, id string, patch domain.PriorityPatch) (*domain.Priority, error) {
	b := psql.Update("priorities").
		Set("edited_by", patch.EditedBy).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + priorityColumns)
	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	if patch.Type != nil {
		b = b.Set("type", *patch.Type)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build priority update: %w", err)
	}

	p, err := scanPriority(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = notFoundOr(err, store.ErrPriorityNotFound)
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to update priority",
				slog.String("error", err.Error()), slog.String("priority_id", id))
		}
		return nil, err
	}
	return p, nil
}

// Delete implements store.PriorityStore.Delete.
func (s *PostgresPriorityStore) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("priorities").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build priority delete: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete priority",
			slog.String("error", err.Error()), slog.String("priority_id", id))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrPriorityNotFound)
}

// Exists implements store.PriorityStore.Exists.
func (s *PostgresPriorityStore) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, s.db, "priorities", id)
}

func scanPriority(row rowScanner) (*domain.Priority, error) {
	var p domain.Priority
	if err := row.Scan(&p.ID, &p.Name, &p.Type, &p.CreatedBy, &p.EditedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
