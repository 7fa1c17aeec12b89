package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MemoryUserStore implements store.UserStore in memory. Emails are unique.
type MemoryUserStore struct {
	// Function fields override the default behavior when set.
	CreateFn func(ctx context.Context, user *domain.User) error
	ListFn   func(ctx context.Context) ([]*domain.User, error)

	// Err makes every call without an override fail.
	Err error

	users   table[domain.User]
	emailMu sync.Mutex
	emails  map[string]string
}

var _ store.UserStore = (*MemoryUserStore)(nil)

// NewMemoryUserStore creates an empty MemoryUserStore.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{emails: make(map[string]string)}
}

func (m *MemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.Err != nil {
		return m.Err
	}

	m.emailMu.Lock()
	defer m.emailMu.Unlock()
	email := domain.NormalizeEmail(user.Email)
	if _, taken := m.emails[email]; taken {
		return store.ErrEmailExists
	}
	m.emails[email] = user.ID
	m.users.put(user.ID, user)
	return nil
}

func (m *MemoryUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	u, ok := m.users.get(id)
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return u, nil
}

func (m *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.emailMu.Lock()
	id, ok := m.emails[domain.NormalizeEmail(email)]
	m.emailMu.Unlock()
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return m.GetByID(ctx, id)
}

func (m *MemoryUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.users.list(), nil
}

func (m *MemoryUserStore) Exists(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.users.has(id), nil
}

// Count returns the number of stored users.
func (m *MemoryUserStore) Count() int {
	return len(m.users.list())
}
