package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MemoryBoardStore implements store.BoardStore in memory.
type MemoryBoardStore struct {
	Err error

	rows table[domain.Board]
}

var _ store.BoardStore = (*MemoryBoardStore)(nil)

func (m *MemoryBoardStore) Create(ctx context.Context, b *domain.Board) error {
	if m.Err != nil {
		return m.Err
	}
	m.rows.put(b.ID, b)
	return nil
}

func (m *MemoryBoardStore) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	b, ok := m.rows.get(id)
	if !ok {
		return nil, store.ErrBoardNotFound
	}
	return b, nil
}

func (m *MemoryBoardStore) List(ctx context.Context) ([]*domain.Board, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.rows.list(), nil
}

func (m *MemoryBoardStore) Update(ctx context.Context, id string, patch domain.BoardPatch) (*domain.Board, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	b, ok, _ := m.rows.update(id, func(b *domain.Board) error {
		if patch.Name != nil {
			b.Name = *patch.Name
		}
		if patch.Description.Present {
			b.Description = patch.Description.Ptr()
		}
		if patch.Status != nil {
			b.Status = *patch.Status
		}
		b.UpdatedAt = time.Now().UTC()
		return nil
	})
	if !ok {
		return nil, store.ErrBoardNotFound
	}
	return b, nil
}

func (m *MemoryBoardStore) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	if !m.rows.remove(id) {
		return store.ErrBoardNotFound
	}
	return nil
}

func (m *MemoryBoardStore) Exists(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.rows.has(id), nil
}
