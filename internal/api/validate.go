package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/validation"
)

type bodyContextKey struct{}

// canonicalizer is implemented by schemas carrying entity ids. Ids are accepted
// in any letter case and rewritten to the lower-case form they are stored in.
type canonicalizer interface {
	canonicalize()
}

// ValidateBody decodes the request body into a T and validates it. On success
// the decoded value is available to later handlers through BodyFromContext; on
// failure the request ends with 400 and no handler after it runs.
func ValidateBody[T any](v *validation.Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := new(T)
			if err := shared.DecodeJSON(w, r, body); err != nil {
				HandleAPIError(w, r, err)
				return
			}
			if err := v.Validate(body); err != nil {
				HandleAPIError(w, r, err)
				return
			}
			if c, ok := any(body).(canonicalizer); ok {
				c.canonicalize()
			}
			ctx := context.WithValue(r.Context(), bodyContextKey{}, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BodyFromContext returns the body stored by ValidateBody[T].
func BodyFromContext[T any](ctx context.Context) (*T, bool) {
	body, ok := ctx.Value(bodyContextKey{}).(*T)
	return body, ok
}

// CheckReferences runs the existence gate over the references of the validated
// body. It must be mounted after ValidateBody[T].
func CheckReferences[T any](
	gate *service.ExistenceChecker,
	refs func(*T) service.References,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, ok := BodyFromContext[T](r.Context())
			if !ok {
				HandleAPIError(w, r, service.Internal("check references", errMissingBody))
				return
			}
			if err := gate.Check(r.Context(), refs(body)); err != nil {
				HandleAPIError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
