package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskboard-api/internal/api/middleware"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/validation"
)

var (
	errMissingBody   = errors.New("validated body missing from request context")
	errMissingCaller = errors.New("user id missing from request context")
)

// pathID extracts and validates a 24-hex id from the URL path parameters.
func pathID(r *http.Request, param string) (string, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return "", validation.NewError(param, "is required")
	}
	id, err := domain.ParseID(raw)
	if err != nil {
		return "", validation.NewError(param, "must be a 24 character hex string")
	}
	return id, nil
}

// callerID returns the authenticated user id. Routes using it sit behind the
// auth middleware, so a missing id is a wiring fault.
func callerID(r *http.Request) (string, error) {
	id, ok := middleware.GetUserID(r)
	if !ok || id == "" {
		return "", service.Internal("identify caller", errMissingCaller)
	}
	return id, nil
}

// body returns the value stored by ValidateBody[T], or an internal error if the
// route was wired without it.
func body[T any](r *http.Request) (*T, error) {
	b, ok := BodyFromContext[T](r.Context())
	if !ok {
		return nil, service.Internal("read request body", errMissingBody)
	}
	return b, nil
}
