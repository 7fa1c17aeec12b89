package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
)

// References are the foreign ids carried by a task write. Nil fields are not checked.
type References struct {
	Category   *string
	AssignedTo *string
	Board      *string
	Priority   *string
}

// existenceLookup is the subset of every store the gate relies on.
type existenceLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// ExistenceChecker verifies that referenced records exist before a write.
// The check and the write are independent; a record deleted in between is
// not detected.
type ExistenceChecker struct {
	categories existenceLookup
	users      existenceLookup
	boards     existenceLookup
	priorities existenceLookup
	logger     *slog.Logger
}

// NewExistenceChecker creates a gate over the given stores.
func NewExistenceChecker(
	categories, users, boards, priorities existenceLookup,
	logger *slog.Logger,
) *ExistenceChecker {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExistenceChecker{
		categories: categories,
		users:      users,
		boards:     boards,
		priorities: priorities,
		logger:     logger.With(slog.String("component", "existence_checker")),
	}
}

// Check validates each present reference in the order category, assignedTo,
// board, priority. It stops at the first failure: a malformed id is a
// validation error and a missing record is a not found error naming it.
func (c *ExistenceChecker) Check(ctx context.Context, refs References) error {
	checks := []struct {
		field  string
		entity string
		id     *string
		lookup existenceLookup
	}{
		{"category", "Category", refs.Category, c.categories},
		{"assignedTo", "User", refs.AssignedTo, c.users},
		{"board", "Board", refs.Board, c.boards},
		{"priority", "Priority", refs.Priority, c.priorities},
	}

	for _, chk := range checks {
		if chk.id == nil {
			continue
		}
		id, err := domain.ParseID(*chk.id)
		if err != nil {
			return Validation(chk.field, chk.field+" must be a 24 character hex string", err)
		}

		found, err := chk.lookup.Exists(ctx, id)
		if err != nil {
			logger.FromContextOrDefault(ctx, c.logger).Error("existence check failed",
				slog.String("entity", chk.entity),
				slog.String("error", redact.Error(err)))
			return Internal("check "+chk.field, err)
		}
		if !found {
			return NotFound(chk.entity, id)
		}
	}
	return nil
}
