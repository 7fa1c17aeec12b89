// Package store declares the persistence contracts for users, categories,
// priorities, boards and tasks, plus the sentinel errors every
// implementation wraps.
package store
