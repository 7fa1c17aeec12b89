package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/validation"
)

// MessageValidationFailed is the top level message of every schema rejection.
const MessageValidationFailed = "Validation failed"

// messageInternal is returned for every failure whose details must stay server side.
const messageInternal = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to HTTP status codes. Anything not
// recognised is a 500.
func MapErrorToStatusCode(err error) int {
	var verr *validation.Error
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return http.StatusUnauthorized
	}

	switch service.KindOf(err) {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message a client may see for err. Service
// errors carry their own safe message; internal failures never leak theirs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return messageInternal
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		return MessageValidationFailed
	}
	if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrExpiredToken) ||
		errors.Is(err, auth.ErrTokenNotYetValid) {
		return "Unauthorized"
	}

	var serr *service.Error
	if errors.As(err, &serr) && serr.Kind != service.KindInternal {
		return serr.Message
	}
	return messageInternal
}

// issuesOf returns the field issues to attach to a 400 response.
func issuesOf(err error) []validation.Issue {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return verr.Issues
	}
	var serr *service.Error
	if errors.As(err, &serr) && serr.Kind == service.KindValidation && serr.Detail != "" {
		return []validation.Issue{{Path: serr.Detail, Message: serr.Message}}
	}
	return nil
}

// HandleAPIError is the single place where errors become HTTP responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	var opts []shared.ResponseOption
	if issues := issuesOf(err); len(issues) > 0 {
		opts = append(opts, shared.WithIssues(issues))
	}
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}
