package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MemoryTaskStore implements store.TaskStore in memory. Task details are
// expanded from the sibling stores; any of them may be nil, in which case
// references of that kind carry only their id.
type MemoryTaskStore struct {
	Err error

	Users      *MemoryUserStore
	Categories *MemoryCategoryStore
	Priorities *MemoryPriorityStore
	Boards     *MemoryBoardStore

	rows table[domain.Task]
}

var _ store.TaskStore = (*MemoryTaskStore)(nil)

func (m *MemoryTaskStore) Create(ctx context.Context, t *domain.Task) error {
	if m.Err != nil {
		return m.Err
	}
	m.rows.put(t.ID, t)
	return nil
}

func (m *MemoryTaskStore) find(id string) (*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	t, ok := m.rows.get(id)
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return t, nil
}

func (m *MemoryTaskStore) GetDetail(ctx context.Context, id string) (*domain.TaskDetail, error) {
	t, err := m.find(id)
	if err != nil {
		return nil, err
	}
	return m.expand(ctx, t), nil
}

func (m *MemoryTaskStore) List(ctx context.Context, f domain.TaskFilter) ([]*domain.TaskDetail, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*domain.TaskDetail, 0)
	for _, t := range m.rows.list() {
		if matches(t, f) {
			out = append(out, m.expand(ctx, t))
		}
	}
	return out, nil
}

func (m *MemoryTaskStore) Update(ctx context.Context, id string, p domain.TaskPatch) (*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	t, ok, _ := m.rows.update(id, func(t *domain.Task) error {
		if p.Name != nil {
			t.Name = *p.Name
		}
		if p.Priority != nil {
			t.Priority = *p.Priority
		}
		if p.Status != nil {
			t.Status = *p.Status
		}
		applyNullable(&t.Description, p.Description)
		applyNullable(&t.Category, p.Category)
		applyNullable(&t.AssignedTo, p.AssignedTo)
		applyNullable(&t.Board, p.Board)
		applyNullable(&t.DueDate, p.DueDate)
		editedBy := p.EditedBy
		t.EditedBy = &editedBy
		t.UpdatedAt = time.Now().UTC()
		return nil
	})
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return t, nil
}

func (m *MemoryTaskStore) Complete(
	ctx context.Context,
	id string,
	completedAt time.Time,
	editedBy string,
) (*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	t, ok, err := m.rows.update(id, func(t *domain.Task) error {
		if t.CompletedAt != nil {
			return domain.ErrTaskAlreadyCompleted
		}
		at := completedAt
		t.CompletedAt = &at
		t.EditedBy = &editedBy
		t.UpdatedAt = time.Now().UTC()
		return nil
	})
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (m *MemoryTaskStore) SoftDelete(ctx context.Context, id string, at time.Time) (*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	t, ok, _ := m.rows.update(id, func(t *domain.Task) error {
		t.Deleted = true
		if t.DeletedAt == nil {
			deletedAt := at
			t.DeletedAt = &deletedAt
		}
		t.UpdatedAt = time.Now().UTC()
		return nil
	})
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return t, nil
}

func applyNullable[T any](dst **T, n domain.Nullable[T]) {
	if n.Present {
		*dst = n.Ptr()
	}
}

func matches(t *domain.Task, f domain.TaskFilter) bool {
	eq := func(want string, got *string) bool {
		return want == "" || (got != nil && *got == want)
	}
	switch {
	case f.Status != "" && t.Status != f.Status,
		f.Priority != "" && t.Priority != f.Priority,
		f.CreatedBy != "" && t.CreatedBy != f.CreatedBy,
		!eq(f.Category, t.Category),
		!eq(f.AssignedTo, t.AssignedTo),
		!eq(f.Board, t.Board):
		return false
	}
	if f.DueFrom != nil && (t.DueDate == nil || t.DueDate.Before(*f.DueFrom)) {
		return false
	}
	if f.DueTo != nil && (t.DueDate == nil || !t.DueDate.Before(*f.DueTo)) {
		return false
	}
	return true
}

func (m *MemoryTaskStore) expand(ctx context.Context, t *domain.Task) *domain.TaskDetail {
	d := &domain.TaskDetail{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
		EditedBy:    t.EditedBy,
		Deleted:     t.Deleted,
		DeletedAt:   t.DeletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CreatedBy:   m.userSummary(ctx, t.CreatedBy),
		Priority:    &domain.PrioritySummary{ID: t.Priority},
	}
	if m.Priorities != nil {
		if p, err := m.Priorities.GetByID(ctx, t.Priority); err == nil {
			d.Priority = &domain.PrioritySummary{ID: p.ID, Name: p.Name, Type: p.Type}
		}
	}
	if t.AssignedTo != nil {
		d.AssignedTo = m.userSummary(ctx, *t.AssignedTo)
	}
	if t.Category != nil {
		d.Category = &domain.CategorySummary{ID: *t.Category}
		if m.Categories != nil {
			if c, err := m.Categories.GetByID(ctx, *t.Category); err == nil {
				d.Category.Name = c.Name
			}
		}
	}
	if t.Board != nil {
		d.Board = &domain.BoardSummary{ID: *t.Board}
		if m.Boards != nil {
			if b, err := m.Boards.GetByID(ctx, *t.Board); err == nil {
				d.Board.Name = b.Name
				d.Board.Status = b.Status
			}
		}
	}
	return d
}

func (m *MemoryTaskStore) userSummary(ctx context.Context, id string) *domain.UserSummary {
	s := &domain.UserSummary{ID: id}
	if m.Users != nil {
		if u, err := m.Users.GetByID(ctx, id); err == nil {
			s.Name = u.Name
			s.Email = u.Email
		}
	}
	return s
}
