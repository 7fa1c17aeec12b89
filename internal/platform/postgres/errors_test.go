package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "tasks",
		ColumnName:     "name",
		ConstraintName: "tasks_status_check",
	}
}

// mockResult implements sql.Result for testing
type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) { return 0, m.err }
func (m mockResult) RowsAffected() (int64, error) { return m.rowsAffected, m.err }

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "no rows", err: sql.ErrNoRows, target: store.ErrNotFound},
		{name: "unique violation", err: newPgError("23505"), target: store.ErrDuplicate},
		{name: "foreign key violation", err: newPgError("23503"), target: store.ErrInvalidEntity},
		{name: "check violation", err: newPgError("23514"), target: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError("23502"), target: store.ErrInvalidEntity},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", newPgError("23505")), target: store.ErrDuplicate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mapped := postgres.MapError(tt.err)
			assert.True(t, errors.Is(mapped, tt.target), "expected %v to wrap %v", mapped, tt.target)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, postgres.MapError(nil))
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		t.Parallel()
		base := errors.New("connection reset")
		assert.Same(t, base, postgres.MapError(base))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()
	assert.True(t, postgres.IsUniqueViolation(newPgError("23505")))
	assert.False(t, postgres.IsUniqueViolation(newPgError("23503")))
	assert.False(t, postgres.IsUniqueViolation(errors.New("plain")))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	require.NoError(t, postgres.CheckRowsAffected(mockResult{rowsAffected: 1}, store.ErrBoardNotFound))

	err := postgres.CheckRowsAffected(mockResult{rowsAffected: 0}, store.ErrBoardNotFound)
	assert.True(t, errors.Is(err, store.ErrBoardNotFound))

	err = postgres.CheckRowsAffected(mockResult{rowsAffected: 0}, nil)
	assert.True(t, errors.Is(err, store.ErrNotFound))

	err = postgres.CheckRowsAffected(mockResult{err: errors.New("driver failure")}, store.ErrBoardNotFound)
	require.Error(t, err)
	assert.False(t, errors.Is(err, store.ErrNotFound))

	assert.Error(t, postgres.CheckRowsAffected(nil, nil))
}
