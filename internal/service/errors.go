package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/redact"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// Kind classifies a service failure.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// ErrInvalidCredentials is the single error login returns for both an unknown
// email and a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Error is the tagged error every service returns. Message is safe to show to
// clients; Detail names the offending field for validation errors. Err keeps
// the cause for logging and errors.Is.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the cause to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports a missing record, naming its entity type and id.
func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s with id %s not found", entity, id)}
}

// Validation reports a rejected field value.
func Validation(field, message string, err error) *Error {
	return &Error{Kind: KindValidation, Message: message, Detail: field, Err: err}
}

// Conflict reports a duplicate unique value.
func Conflict(message string, err error) *Error {
	return &Error{Kind: KindConflict, Message: message, Err: err}
}

// Unauthorized reports failed authentication. The message is the same for every cause.
func Unauthorized(err error) *Error {
	return &Error{Kind: KindUnauthorized, Message: ErrInvalidCredentials.Error(), Err: err}
}

// Internal wraps an unexpected failure of op.
func Internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Message: "failed to " + op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Kind
	}
	return KindInternal
}

// fromDomain converts a domain validation failure into a validation *Error and
// anything else into an internal one.
func fromDomain(op string, err error) *Error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return Validation(verr.Field, fmt.Sprintf("%s %s", verr.Field, verr.Message), err)
	}
	return Internal(op, err)
}

// fromStore converts a store failure on the record entity/id. Missing records
// become not found errors; anything else is logged and becomes internal.
func fromStore(log *slog.Logger, op, entity, id string, err error) *Error {
	if store.IsNotFoundError(err) {
		return NotFound(entity, id)
	}
	log.Error("failed to "+op,
		slog.String("entity", entity),
		slog.String("id", id),
		slog.String("error", redact.Error(err)))
	return Internal(op, err)
}
