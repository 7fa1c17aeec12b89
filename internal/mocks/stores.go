package mocks

// MemoryStores bundles one in-memory store per entity, wired so that task
// details expand from the others.
type MemoryStores struct {
	Users      *MemoryUserStore
	Categories *MemoryCategoryStore
	Priorities *MemoryPriorityStore
	Boards     *MemoryBoardStore
	Tasks      *MemoryTaskStore
}

// NewMemoryStores creates an empty, wired set of in-memory stores.
func NewMemoryStores() *MemoryStores {
	s := &MemoryStores{
		Users:      NewMemoryUserStore(),
		Categories: &MemoryCategoryStore{},
		Priorities: &MemoryPriorityStore{},
		Boards:     &MemoryBoardStore{},
	}
	s.Tasks = &MemoryTaskStore{
		Users:      s.Users,
		Categories: s.Categories,
		Priorities: s.Priorities,
		Boards:     s.Boards,
	}
	return s
}
