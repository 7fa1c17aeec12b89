package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MemoryPriorityStore implements store.PriorityStore in memory.
type MemoryPriorityStore struct {
	Err error

	rows table[domain.Priority]
}

var _ store.PriorityStore = (*MemoryPriorityStore)(nil)

func (m *MemoryPriorityStore) Create(ctx context.Context, p *domain.Priority) error {
	if m.Err != nil {
		return m.Err
	}
	m.rows.put(p.ID, p)
	return nil
}

func (m *MemoryPriorityStore) GetByID(ctx context.Context, id string) (*domain.Priority, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.rows.get(id)
	if !ok {
		return nil, store.ErrPriorityNotFound
	}
	return p, nil
}

func (m *MemoryPriorityStore) List(ctx context.Context) ([]*domain.Priority, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.rows.list(), nil
}

func (m *MemoryPriorityStore) Update(
	ctx context.Context,
	id string,
	patch domain.PriorityPatch,
) (*domain.Priority, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok, _ := m.rows.update(id, func(p *domain.Priority) error {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Type != nil {
			p.Type = *patch.Type
		}
		editedBy := patch.EditedBy
		p.EditedBy = &editedBy
		p.UpdatedAt = time.Now().UTC()
		return nil
	})
	if !ok {
		return nil, store.ErrPriorityNotFound
	}
	return p, nil
}

func (m *MemoryPriorityStore) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	if !m.rows.remove(id) {
		return store.ErrPriorityNotFound
	}
	return nil
}

func (m *MemoryPriorityStore) Exists(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.rows.has(id), nil
}
