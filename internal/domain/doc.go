// Package domain contains the core business entities of the task board:
// users, categories, priorities, boards and tasks, together with the
// value types shared by every layer (identifiers, nullable patch fields,
// status enumerations) and the entity-level invariants each type enforces.
// It has no knowledge of HTTP or of the persistence engine.
package domain
