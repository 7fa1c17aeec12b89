package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// BoardService manages boards. Deleting a board leaves tasks that point at it untouched.
type BoardService interface {
	Create(ctx context.Context, name string, description *string, status domain.BoardStatus) (*domain.Board, error)
	List(ctx context.Context) ([]*domain.Board, error)
	Get(ctx context.Context, id string) (*domain.Board, error)
	Update(ctx context.Context, id string, patch domain.BoardPatch) (*domain.Board, error)
	Delete(ctx context.Context, id string) error
}

type boardService struct {
	boards store.BoardStore
	logger *slog.Logger
}

var _ BoardService = (*boardService)(nil)

// NewBoardService creates a BoardService.
func NewBoardService(boards store.BoardStore, logger *slog.Logger) BoardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &boardService{
		boards: boards,
		logger: logger.With(slog.String("component", "board_service")),
	}
}

func (s *boardService) Create(
	ctx context.Context,
	name string,
	description *string,
	status domain.BoardStatus,
) (*domain.Board, error) {
	b, err := domain.NewBoard(name, description, status)
	if err != nil {
		return nil, fromDomain("create board", err)
	}
	if err := s.boards.Create(ctx, b); err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "create board", "Board", b.ID, err)
	}
	return b, nil
}

func (s *boardService) List(ctx context.Context) ([]*domain.Board, error) {
	list, err := s.boards.List(ctx)
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "list boards", "Board", "", err)
	}
	return list, nil
}

func (s *boardService) Get(ctx context.Context, id string) (*domain.Board, error) {
	b, err := s.boards.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "get board", "Board", id, err)
	}
	return b, nil
}

func (s *boardService) Update(ctx context.Context, id string, patch domain.BoardPatch) (*domain.Board, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, Validation("status", "status must be one of Open, In Progress, Closed", domain.ErrInvalidStatus)
	}
	if patch.IsEmpty() {
		return s.Get(ctx, id)
	}
	b, err := s.boards.Update(ctx, id, patch)
	if err != nil {
		return nil, fromStore(logger.FromContextOrDefault(ctx, s.logger), "update board", "Board", id, err)
	}
	return b, nil
}

func (s *boardService) Delete(ctx context.Context, id string) error {
	if err := s.boards.Delete(ctx, id); err != nil {
		return fromStore(logger.FromContextOrDefault(ctx, s.logger), "delete board", "Board", id, err)
	}
	return nil
}
