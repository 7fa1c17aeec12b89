package domain

import (
	"strings"
	"time"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "Open"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
	TaskStatusArchived   TaskStatus = "Archived"
	TaskStatusToDo       TaskStatus = "To Do"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusDone, TaskStatusArchived, TaskStatusToDo:
		return true
	}
	return false
}

// Task is a unit of work. Category, AssignedTo, Priority and Board hold ids of
// the referenced records. CreatedBy is fixed at creation, CompletedAt is set at
// most once, and deletion only sets Deleted and DeletedAt.
type Task struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	AssignedTo  *string    `json:"assignedTo"`
	Priority    string     `json:"priority"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedBy   string     `json:"createdBy"`
	EditedBy    *string    `json:"editedBy"`
	Board       *string    `json:"board"`
	Deleted     bool       `json:"deleted"`
	DeletedAt   *time.Time `json:"deleteAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTaskParams carries the caller-supplied fields of a new task.
type NewTaskParams struct {
	Name        string
	Description *string
	Category    *string
	AssignedTo  *string
	Priority    string
	Status      TaskStatus
	DueDate     *time.Time
	Board       *string
	CreatedBy   string
}

// NewTask creates a Task. An empty status defaults to To Do.
func NewTask(p NewTaskParams) (*Task, error) {
	status := p.Status
	if status == "" {
		status = TaskStatusToDo
	}
	now := time.Now().UTC()
	t := &Task{
		ID:          NewID(),
		Name:        strings.TrimSpace(p.Name),
		Description: p.Description,
		Category:    p.Category,
		AssignedTo:  p.AssignedTo,
		Priority:    p.Priority,
		Status:      status,
		DueDate:     p.DueDate,
		CreatedBy:   p.CreatedBy,
		Board:       p.Board,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if !IsValidID(t.ID) {
		return NewValidationError("id", "must be a 24 character hex string", ErrInvalidID)
	}
	if t.Name == "" {
		return NewValidationError("name", "cannot be empty", nil)
	}
	if !t.Status.Valid() {
		return NewValidationError("status", "is not a known task status", ErrInvalidStatus)
	}
	if !IsValidID(t.Priority) {
		return NewValidationError("priority", "must be a 24 character hex string", ErrInvalidID)
	}
	if !IsValidID(t.CreatedBy) {
		return NewValidationError("createdBy", "must be a 24 character hex string", ErrInvalidID)
	}
	for field, ref := range map[string]*string{
		"category":   t.Category,
		"assignedTo": t.AssignedTo,
		"board":      t.Board,
	} {
		if ref != nil && !IsValidID(*ref) {
			return NewValidationError(field, "must be a 24 character hex string", ErrInvalidID)
		}
	}
	return nil
}

// IsCompleted reports whether the task has been completed.
func (t *Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

// TaskPatch is a sparse task update. Nullable fields are cleared by an explicit
// null; pointer fields can only be replaced. EditedBy is always recorded.
type TaskPatch struct {
	Name        *string
	Description Nullable[string]
	Category    Nullable[string]
	AssignedTo  Nullable[string]
	Priority    *string
	Status      *TaskStatus
	DueDate     Nullable[time.Time]
	Board       Nullable[string]
	EditedBy    string
}

// TaskDetail is a task with its references expanded into summaries of the
// referenced records. A reference whose record no longer exists carries only its id.
type TaskDetail struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Category    *CategorySummary `json:"category"`
	AssignedTo  *UserSummary     `json:"assignedTo"`
	Priority    *PrioritySummary `json:"priority"`
	Status      TaskStatus       `json:"status"`
	DueDate     *time.Time       `json:"dueDate"`
	CompletedAt *time.Time       `json:"completedAt"`
	CreatedBy   *UserSummary     `json:"createdBy"`
	EditedBy    *string          `json:"editedBy"`
	Board       *BoardSummary    `json:"board"`
	Deleted     bool             `json:"deleted"`
	DeletedAt   *time.Time       `json:"deleteAt"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// TaskFilter narrows a task listing. Every non-empty field must match exactly.
// DueFrom/DueTo bound the due date as a half-open interval [DueFrom, DueTo).
type TaskFilter struct {
	Status     TaskStatus
	Priority   string
	Category   string
	AssignedTo string
	Board      string
	CreatedBy  string
	DueFrom    *time.Time
	DueTo      *time.Time
}
