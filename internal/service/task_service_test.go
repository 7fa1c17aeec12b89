package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskFixture struct {
	stores   *mocks.MemoryStores
	svc      *taskService
	user     *domain.User
	category *domain.Category
	priority *domain.Priority
	board    *domain.Board
	now      time.Time
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()
	ctx := context.Background()
	f := &taskFixture{
		stores: mocks.NewMemoryStores(),
		now:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.svc = newTaskService(f.stores.Tasks, nil, func() time.Time { return f.now })

	var err error
	f.user, err = domain.NewUser("Ada", "ada@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, f.stores.Users.Create(ctx, f.user))
	f.category, err = domain.NewCategory("Work", f.user.ID)
	require.NoError(t, err)
	require.NoError(t, f.stores.Categories.Create(ctx, f.category))
	f.priority, err = domain.NewPriority("High", 1, f.user.ID)
	require.NoError(t, err)
	require.NoError(t, f.stores.Priorities.Create(ctx, f.priority))
	f.board, err = domain.NewBoard("Roadmap", nil, domain.BoardStatusOpen)
	require.NoError(t, err)
	require.NoError(t, f.stores.Boards.Create(ctx, f.board))
	return f
}

func (f *taskFixture) create(t *testing.T, name string) *domain.Task {
	t.Helper()
	due := f.now.Add(72 * time.Hour)
	task, err := f.svc.Create(context.Background(), domain.NewTaskParams{
		Name:        name,
		Description: strPtr("something to do"),
		Category:    &f.category.ID,
		AssignedTo:  &f.user.ID,
		Priority:    f.priority.ID,
		DueDate:     &due,
		Board:       &f.board.ID,
		CreatedBy:   f.user.ID,
	})
	require.NoError(t, err)
	return task
}

func TestTaskServiceCreateAndGet(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)
	ctx := context.Background()

	task := f.create(t, "Write report")
	assert.Equal(t, domain.TaskStatusToDo, task.Status)

	d, err := f.svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Work", d.Category.Name)
	assert.Equal(t, "ada@example.com", d.AssignedTo.Email)
	assert.Equal(t, "Ada", d.CreatedBy.Name)
	assert.Equal(t, "High", d.Priority.Name)
	assert.Equal(t, "Roadmap", d.Board.Name)

	_, err = f.svc.Get(ctx, domain.NewID())
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = f.svc.Create(ctx, domain.NewTaskParams{Name: "x", Priority: "bad", CreatedBy: f.user.ID})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestTaskServiceUpdateClearsNullableFields(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)
	ctx := context.Background()
	task := f.create(t, "Write report")

	editor, err := domain.NewUser("Grace", "grace@example.com", "hash")
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, task.ID, domain.TaskPatch{
		Category: domain.Null[string](),
		Board:    domain.Null[string](),
		EditedBy: editor.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Category)
	assert.Nil(t, updated.Board)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, f.user.ID, updated.CreatedBy, "createdBy never changes")
	require.NotNil(t, updated.EditedBy)
	assert.Equal(t, editor.ID, *updated.EditedBy)

	bogus := domain.TaskStatus("Someday")
	_, err = f.svc.Update(ctx, task.ID, domain.TaskPatch{Status: &bogus, EditedBy: editor.ID})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = f.svc.Update(ctx, domain.NewID(), domain.TaskPatch{EditedBy: editor.ID})
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestTaskServiceCompleteOnce(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)
	ctx := context.Background()
	task := f.create(t, "Write report")

	done, err := f.svc.Complete(ctx, task.ID, nil, f.user.ID)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	assert.True(t, f.now.Equal(*done.CompletedAt))

	later := f.now.Add(time.Hour)
	_, err = f.svc.Complete(ctx, task.ID, &later, f.user.ID)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.ErrorIs(t, err, domain.ErrTaskAlreadyCompleted)

	stored, err := f.stores.Tasks.GetDetail(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, f.now.Equal(*stored.CompletedAt), "completedAt unchanged")

	_, err = f.svc.Complete(ctx, domain.NewID(), nil, f.user.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestTaskServiceSoftDelete(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)
	ctx := context.Background()
	task := f.create(t, "Write report")

	deleted, err := f.svc.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
	require.NotNil(t, deleted.DeletedAt)
	first := *deleted.DeletedAt

	f.now = f.now.Add(time.Hour)
	again, err := f.svc.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, first.Equal(*again.DeletedAt))

	d, err := f.svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, d.Deleted)

	list, err := f.svc.List(ctx, domain.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1, "soft-deleted tasks stay listed")
}

func TestTaskServiceList(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)
	ctx := context.Background()
	f.create(t, "First task")
	second := f.create(t, "Second task")

	status := domain.TaskStatusDone
	_, err := f.svc.Update(ctx, second.ID, domain.TaskPatch{Status: &status, EditedBy: f.user.ID})
	require.NoError(t, err)

	all, err := f.svc.List(ctx, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Second task", all[0].Name, "newest first")

	done, err := f.svc.List(ctx, domain.TaskFilter{Status: domain.TaskStatusDone, Board: f.board.ID})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, second.ID, done[0].ID)

	from := f.now.Add(72 * time.Hour)
	to := from.Add(time.Second)
	due, err := f.svc.List(ctx, domain.TaskFilter{DueFrom: &from, DueTo: &to})
	require.NoError(t, err)
	assert.Len(t, due, 2)

	_, err = f.svc.List(ctx, domain.TaskFilter{Status: "Later"})
	assert.Equal(t, KindValidation, KindOf(err))

	f.stores.Tasks.Err = errors.New("down")
	_, err = f.svc.List(ctx, domain.TaskFilter{})
	assert.Equal(t, KindInternal, KindOf(err))
}
