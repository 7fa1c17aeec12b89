package mocks

import "sync"

// table is a goroutine-safe keyed collection that remembers insertion order.
// Rows are copied on the way in and out so callers never share state with it.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]*T
	order []string
}

func (t *table[T]) put(id string, v *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rows == nil {
		t.rows = make(map[string]*T)
	}
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	cp := *v
	t.rows[id] = &cp
}

func (t *table[T]) get(id string) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	cp := *v
	return &cp, true
}

func (t *table[T]) has(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rows[id]
	return ok
}

// update applies fn to the stored row under the write lock and returns a copy.
func (t *table[T]) update(id string, fn func(v *T) error) (*T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok {
		return nil, false, nil
	}
	if err := fn(v); err != nil {
		return nil, true, err
	}
	cp := *v
	return &cp, true, nil
}

func (t *table[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, k := range t.order {
		if k == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// list returns copies of every row, newest first.
func (t *table[T]) list() []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*T, 0, len(t.order))
	for i := len(t.order) - 1; i >= 0; i-- {
		cp := *t.rows[t.order[i]]
		out = append(out, &cp)
	}
	return out
}
