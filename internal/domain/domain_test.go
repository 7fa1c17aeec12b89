package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "lower-case hex", input: "64b7f0c2a1b2c3d4e5f60718", want: "64b7f0c2a1b2c3d4e5f60718"},
		{name: "upper-case hex is canonicalized", input: "64B7F0C2A1B2C3D4E5F60718", want: "64b7f0c2a1b2c3d4e5f60718"},
		{name: "too short", input: "64b7f0c2", wantErr: true},
		{name: "non-hex", input: "zzb7f0c2a1b2c3d4e5f60718", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidID))
				assert.False(t, domain.IsValidID(tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewID(t *testing.T) {
	a, b := domain.NewID(), domain.NewID()
	assert.Len(t, a, domain.IDLength)
	assert.True(t, domain.IsValidID(a))
	assert.NotEqual(t, a, b)
	assert.Equal(t, strings.ToLower(a), a)
}

func TestNewUser(t *testing.T) {
	user, err := domain.NewUser("  Ada  ", " Ada@Example.COM ", "hash")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.True(t, domain.IsValidID(user.ID))
	assert.False(t, user.CreatedAt.IsZero())

	_, err = domain.NewUser("Ada", "not-an-email", "hash")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidEmail))

	_, err = domain.NewUser("Ada", "ada@example.com", "")
	assert.Error(t, err)
}

func TestNewBoardDefaultsStatus(t *testing.T) {
	board, err := domain.NewBoard("Sprint", nil, "")
	require.NoError(t, err)
	assert.Equal(t, domain.BoardStatusOpen, board.Status)

	_, err = domain.NewBoard("Sprint", nil, domain.BoardStatus("Paused"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidStatus))
}

func TestBoardPatchIsEmpty(t *testing.T) {
	assert.True(t, domain.BoardPatch{}.IsEmpty())
	assert.False(t, domain.BoardPatch{Description: domain.Null[string]()}.IsEmpty())
}

func TestNewTask(t *testing.T) {
	creator := domain.NewID()
	priority := domain.NewID()

	task, err := domain.NewTask(domain.NewTaskParams{
		Name:      "Write docs",
		Priority:  priority,
		CreatedBy: creator,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusToDo, task.Status)
	assert.False(t, task.IsCompleted())
	assert.False(t, task.Deleted)
	assert.Nil(t, task.DeletedAt)

	bad := "nope"
	_, err = domain.NewTask(domain.NewTaskParams{
		Name:      "Write docs",
		Priority:  priority,
		CreatedBy: creator,
		Board:     &bad,
	})
	require.Error(t, err)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "board", vErr.Field)
}

func TestTaskStatusValid(t *testing.T) {
	for _, s := range []domain.TaskStatus{"Open", "In Progress", "Done", "Archived", "To Do"} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, domain.TaskStatus("Closed").Valid())
}
