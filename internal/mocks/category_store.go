package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MemoryCategoryStore implements store.CategoryStore in memory.
type MemoryCategoryStore struct {
	Err error

	rows table[domain.Category]
}

var _ store.CategoryStore = (*MemoryCategoryStore)(nil)

func (m *MemoryCategoryStore) Create(ctx context.Context, c *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.rows.put(c.ID, c)
	return nil
}

func (m *MemoryCategoryStore) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.rows.get(id)
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	return c, nil
}

func (m *MemoryCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.rows.list(), nil
}

func (m *MemoryCategoryStore) Update(
	ctx context.Context,
	id string,
	patch domain.CategoryPatch,
) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok, _ := m.rows.update(id, func(c *domain.Category) error {
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		editedBy := patch.EditedBy
		c.EditedBy = &editedBy
		c.UpdatedAt = time.Now().UTC()
		return nil
	})
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	return c, nil
}

func (m *MemoryCategoryStore) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	if !m.rows.remove(id) {
		return store.ErrCategoryNotFound
	}
	return nil
}

func (m *MemoryCategoryStore) Exists(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.rows.has(id), nil
}
