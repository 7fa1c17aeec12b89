package api

import (
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// PriorityHandler serves /priorities.
type PriorityHandler struct {
	priorities service.PriorityService
}

// NewPriorityHandler creates a new PriorityHandler.
func NewPriorityHandler(priorities service.PriorityService) *PriorityHandler {
	return &PriorityHandler{priorities: priorities}
}

func (h *PriorityHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := body[CreatePriorityRequest](r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	caller, err := callerID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	p, err := h.priorities.Create(r.Context(), req.Name, req.Type, caller)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, PriorityResponse{
		Message:  "Priority created successfully",
		Priority: p,
	})
}

func (h *PriorityHandler) List(w http.ResponseWriter, r *http.Request) {
	ps, err := h.priorities.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ps)
}

func (h *PriorityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	p, err := h.priorities.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, p)
}

func (h *PriorityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	req, err := body[UpdatePriorityRequest](r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	caller, err := callerID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	p, err := h.priorities.Update(r.Context(), id, domain.PriorityPatch{
		Name:     req.Name,
		Type:     req.Type,
		EditedBy: caller,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, PriorityResponse{
		Message:  "Priority updated successfully",
		Priority: p,
	})
}

func (h *PriorityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := h.priorities.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Priority deleted successfully"})
}
