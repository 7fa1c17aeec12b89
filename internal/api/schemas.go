package api

import (
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// Request schemas. Each mutating route decodes into exactly one of these and is
// rejected with 400 before any service runs if the tags do not hold. Update
// schemas implement validation.Patch so an empty body is refused.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2"`
}

// Empty implements validation.Patch.
func (r UpdateCategoryRequest) Empty() bool {
	return r.Name == nil
}

// CreatePriorityRequest carries the priority rank as "type", lowest is most urgent.
type CreatePriorityRequest struct {
	Name string `json:"name" validate:"required,min=2"`
	Type int    `json:"type" validate:"required,min=1"`
}

type UpdatePriorityRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2"`
	Type *int    `json:"type" validate:"omitempty,min=1"`
}

// Empty implements validation.Patch.
func (r UpdatePriorityRequest) Empty() bool {
	return r.Name == nil && r.Type == nil
}

type CreateBoardRequest struct {
	Name        string  `json:"name"        validate:"required,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Status      string  `json:"status"      validate:"omitempty,oneof='Open' 'In Progress' 'Closed'"`
}

// UpdateBoardRequest accepts null on description to clear it.
type UpdateBoardRequest struct {
	Name        *string                 `json:"name"        validate:"omitempty,min=3,max=100"`
	Description domain.Nullable[string] `json:"description" validate:"omitempty,max=500"`
	Status      *string                 `json:"status"      validate:"omitempty,oneof='Open' 'In Progress' 'Closed'"`
}

// Empty implements validation.Patch.
func (r UpdateBoardRequest) Empty() bool {
	return r.Name == nil && !r.Description.Present && r.Status == nil
}

// Patch converts the request to a domain patch.
func (r UpdateBoardRequest) Patch() domain.BoardPatch {
	p := domain.BoardPatch{Name: r.Name, Description: r.Description}
	if r.Status != nil {
		s := domain.BoardStatus(*r.Status)
		p.Status = &s
	}
	return p
}

// CreateTaskRequest defines the payload for task creation. assignedTo, board
// and status are optional; status defaults to "To Do".
type CreateTaskRequest struct {
	Name        string    `json:"name"        validate:"required,min=3"`
	Description string    `json:"description" validate:"required,min=5"`
	Category    string    `json:"category"    validate:"required,objectid"`
	AssignedTo  *string   `json:"assignedTo"  validate:"omitempty,objectid"`
	Priority    string    `json:"priority"    validate:"required,objectid"`
	Status      string    `json:"status"      validate:"omitempty,oneof='Open' 'In Progress' 'Done' 'Archived' 'To Do'"`
	DueDate     time.Time `json:"dueDate"     validate:"required,future"`
	Board       *string   `json:"board"       validate:"omitempty,objectid"`
}

// References returns the foreign ids the existence gate must resolve.
func (r *CreateTaskRequest) References() service.References {
	return service.References{
		Category:   &r.Category,
		AssignedTo: r.AssignedTo,
		Board:      r.Board,
		Priority:   &r.Priority,
	}
}

func (r *CreateTaskRequest) canonicalize() {
	canonicalID(&r.Category)
	canonicalID(&r.Priority)
	canonicalID(r.AssignedTo)
	canonicalID(r.Board)
}

// Params converts the request to domain creation parameters.
func (r *CreateTaskRequest) Params(createdBy string) domain.NewTaskParams {
	description := r.Description
	category := r.Category
	dueDate := r.DueDate.UTC()
	return domain.NewTaskParams{
		Name:        r.Name,
		Description: &description,
		Category:    &category,
		AssignedTo:  r.AssignedTo,
		Priority:    r.Priority,
		Status:      domain.TaskStatus(r.Status),
		DueDate:     &dueDate,
		Board:       r.Board,
		CreatedBy:   createdBy,
	}
}

// UpdateTaskRequest is a sparse task update. null clears description, category,
// assignedTo, board and dueDate; null on the other fields is ignored.
type UpdateTaskRequest struct {
	Name        *string                    `json:"name"        validate:"omitempty,min=3"`
	Description domain.Nullable[string]    `json:"description" validate:"omitempty,min=5"`
	Category    domain.Nullable[string]    `json:"category"    validate:"omitempty,objectid"`
	AssignedTo  domain.Nullable[string]    `json:"assignedTo"  validate:"omitempty,objectid"`
	Priority    *string                    `json:"priority"    validate:"omitempty,objectid"`
	Status      *string                    `json:"status"      validate:"omitempty,oneof='Open' 'In Progress' 'Done' 'Archived' 'To Do'"`
	DueDate     domain.Nullable[time.Time] `json:"dueDate"     validate:"omitempty,future"`
	Board       domain.Nullable[string]    `json:"board"       validate:"omitempty,objectid"`
}

// Empty implements validation.Patch.
func (r UpdateTaskRequest) Empty() bool {
	return r.Name == nil && r.Priority == nil && r.Status == nil &&
		!r.Description.Present && !r.Category.Present && !r.AssignedTo.Present &&
		!r.DueDate.Present && !r.Board.Present
}

func (r *UpdateTaskRequest) canonicalize() {
	canonicalID(&r.Category.Value)
	canonicalID(&r.AssignedTo.Value)
	canonicalID(&r.Board.Value)
	canonicalID(r.Priority)
}

// References returns the ids being set. Cleared fields are not checked.
func (r *UpdateTaskRequest) References() service.References {
	return service.References{
		Category:   r.Category.Ptr(),
		AssignedTo: r.AssignedTo.Ptr(),
		Board:      r.Board.Ptr(),
		Priority:   r.Priority,
	}
}

// Patch converts the request to a domain patch edited by editedBy.
func (r *UpdateTaskRequest) Patch(editedBy string) domain.TaskPatch {
	p := domain.TaskPatch{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		AssignedTo:  r.AssignedTo,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		Board:       r.Board,
		EditedBy:    editedBy,
	}
	if r.DueDate.IsSet() {
		p.DueDate = domain.Set(r.DueDate.Value.UTC())
	}
	if r.Status != nil {
		s := domain.TaskStatus(*r.Status)
		p.Status = &s
	}
	return p
}

// CompleteTaskRequest optionally overrides the completion time.
type CompleteTaskRequest struct {
	CompletedAt *time.Time `json:"completedAt"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// RegisterResponse is returned with 201 on registration.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse is returned with 200 on login.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type CategoryResponse struct {
	Message  string           `json:"message"`
	Category *domain.Category `json:"category"`
}

type PriorityResponse struct {
	Message  string           `json:"message"`
	Priority *domain.Priority `json:"priority"`
}

// canonicalID lower-cases a well-formed id in place. Empty and malformed
// values are left for validation to report.
func canonicalID(id *string) {
	if id == nil || *id == "" {
		return
	}
	if c, err := domain.ParseID(*id); err == nil {
		*id = c
	}
}
