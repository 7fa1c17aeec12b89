package api

import (
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// BoardHandler serves /boards. Responses are bare boards; delete replies 204.
type BoardHandler struct {
	boards service.BoardService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(boards service.BoardService) *BoardHandler {
	return &BoardHandler{boards: boards}
}

func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := body[CreateBoardRequest](r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	b, err := h.boards.Create(r.Context(), req.Name, req.Description, domain.BoardStatus(req.Status))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, b)
}

func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	bs, err := h.boards.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, bs)
}

func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	b, err := h.boards.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, b)
}

// Update serves both PUT and PATCH; either way only supplied fields change.
func (h *BoardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	req, err := body[UpdateBoardRequest](r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	b, err := h.boards.Update(r.Context(), id, req.Patch())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, b)
}

// Delete removes the board. Tasks that reference it keep the dangling id.
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := h.boards.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
