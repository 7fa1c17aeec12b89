package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/validation"
)

// dueDayLayout is the date-only form accepted by /tasks/due/{date}.
const dueDayLayout = "2006-01-02"

// TaskHandler serves /tasks. Writes reply with the stored task, reads with
// the joined detail.
type TaskHandler struct {
	tasks service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create handles POST /tasks. Body validation and the existence gate run
// before it.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := body[CreateTaskRequest](r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	caller, err := callerID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	t, err := h.tasks.Create(r.Context(), req.Params(caller))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, t)
}

// List handles GET /tasks with optional query filters
// status, priority, category, assignedTo and board.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.TaskFilter{Status: domain.TaskStatus(q.Get("status"))}

	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"priority", &filter.Priority},
		{"category", &filter.Category},
		{"assignedTo", &filter.AssignedTo},
		{"board", &filter.Board},
	} {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		id, err := domain.ParseID(raw)
		if err != nil {
			HandleAPIError(w, r, validation.NewError(f.name, "must be a 24 character hex string"))
			return
		}
		*f.dst = id
	}

	h.list(w, r, filter)
}

// ListBy returns a handler listing the tasks whose reference field matches
// the {id} path parameter.
func (h *TaskHandler) ListBy(set func(f *domain.TaskFilter, id string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		var filter domain.TaskFilter
		set(&filter, id)
		h.list(w, r, filter)
	}
}

// ListByStatus handles GET /tasks/status/{status}.
func (h *TaskHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.TaskFilter{Status: domain.TaskStatus(chi.URLParam(r, "status"))})
}

// ListByDueDate handles GET /tasks/due/{date}. A YYYY-MM-DD date matches the
// whole UTC day; an RFC 3339 instant matches exactly.
func (h *TaskHandler) ListByDueDate(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDueRange(chi.URLParam(r, "date"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	h.list(w, r, domain.TaskFilter{DueFrom: &from, DueTo: &to})
}

func parseDueRange(raw string) (time.Time, time.Time, error) {
	if day, err := time.Parse(dueDayLayout, raw); err == nil {
		return day, day.AddDate(0, 0, 1), nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, time.Time{}, validation.NewError("date", "must be a YYYY-MM-DD date or an RFC 3339 timestamp")
	}
	at = at.UTC()
	return at, at.Add(time.Nanosecond), nil
}

func (h *TaskHandler) list(w http.ResponseWriter, r *http.Request, filter domain.TaskFilter) {
	tasks, err := h.tasks.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	t, err := h.tasks.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, t)
}

// Update serves both PUT and PATCH. editedBy is always the caller.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	req, err := body[UpdateTaskRequest](r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	caller, err := callerID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	t, err := h.tasks.Update(r.Context(), id, req.Patch(caller))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, t)
}

// Complete handles PATCH /tasks/{id}/complete. The body is optional.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	caller, err := callerID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req CompleteTaskRequest
	if err := shared.DecodeOptionalJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	t, err := h.tasks.Complete(r.Context(), id, req.CompletedAt, caller)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, t)
}

// Delete soft-deletes the task. It stays readable with deleted set.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if _, err := h.tasks.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
