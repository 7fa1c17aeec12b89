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

const boardColumns = "id, name, description, status, created_at, updated_at"

// PostgresBoardStore implements store.BoardStore.
type PostgresBoardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBoardStore creates a board store over db. A nil logger uses the default.
func NewPostgresBoardStore(db store.DBTX, logger *slog.Logger) *PostgresBoardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresBoardStore{
		db:     db,
		logger: logger.With(slog.String("component", "board_store")),
	}
}

var _ store.BoardStore = (*PostgresBoardStore)(nil)

// Create implements store.BoardStore.Create.
func (s *PostgresBoardStore) Create(ctx context.Context, b *domain.Board) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := b.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query, args, err := psql.Insert("boards").
		Columns("id", "name", "description", "status", "created_at", "updated_at").
		Values(b.ID, b.Name, b.Description, string(b.Status), b.CreatedAt, b.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build board insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to create board", slog.String("error", err.Error()), slog.String("board_id", b.ID))
		return store.NewStoreError("board", "create", "failed to insert board", MapError(err))
	}

	log.Info("board created", slog.String("board_id", b.ID), slog.String("status", string(b.Status)))
	return nil
}

// GetByID implements store.BoardStore.GetByID.
func (s *PostgresBoardStore) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	query, args, err := psql.Select(boardColumns).From("boards").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build board query: %w", err)
	}

	b, err := scanBoard(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, store.ErrBoardNotFound)
	}
	return b, nil
}

// List implements store.BoardStore.List.
func (s *PostgresBoardStore) List(ctx context.Context) ([]*domain.Board, error) {
	query, args, err := psql.Select(boardColumns).From("boards").OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build board list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list boards", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	boards := make([]*domain.Board, 0)
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, MapError(err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return boards, nil
}

// Update implements store.BoardStore.Update.
// A present-but-null description is written as NULL.
func (s *PostgresBoardStore) Update(ctx context.Context, id string, patch domain.BoardPatch) (*domain.Board, error) {
	ub := psql.Update("boards").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + boardColumns)
	if patch.Name != nil {
		ub = ub.Set("name", *patch.Name)
	}
	if patch.Description.Present {
		ub = ub.Set("description", patch.Description.Ptr())
	}
	if patch.Status != nil {
		ub = ub.Set("status", string(*patch.Status))
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build board update: %w", err)
	}

	b, err := scanBoard(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = notFoundOr(err, store.ErrBoardNotFound)
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to update board",
				slog.String("error", err.Error()), slog.String("board_id", id))
		}
		return nil, err
	}
	return b, nil
}

// Delete implements store.BoardStore.Delete.
// TODO: decide whether tasks pointing at a deleted board should be detached;
// today their board_id is left dangling.
func (s *PostgresBoardStore) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("boards").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build board delete: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete board",
			slog.String("error", err.Error()), slog.String("board_id", id))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrBoardNotFound)
}

// Exists implements store.BoardStore.Exists.
func (s *PostgresBoardStore) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, s.db, "boards", id)
}

func scanBoard(row rowScanner) (*domain.Board, error) {
	var b domain.Board
	var status string
	if err := row.Scan(&b.ID, &b.Name, &b.Description, &status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Status = domain.BoardStatus(status)
	return &b, nil
}
