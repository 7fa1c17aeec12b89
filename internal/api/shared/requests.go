package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/validation"
)

// MaxBodyBytes caps the size of a JSON request body.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into v. Malformed input is reported as a
// *validation.Error so it reaches the client as a 400 with an issue list.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return decodeJSON(w, r, v, false)
}

// DecodeOptionalJSON is DecodeJSON for routes whose body may be omitted. An
// empty body leaves v untouched.
func DecodeOptionalJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return decodeJSON(w, r, v, true)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}, optional bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		if optional {
			return nil
		}
		return validation.NewError("", "request body is required")
	}

	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(body)

	if err := dec.Decode(v); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			if optional {
				return nil
			}
			return validation.NewError("", "request body is required")
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return validation.NewError("", "request body is not valid JSON")
		case errors.As(err, &typeErr):
			return validation.NewError(typeErr.Field, fmt.Sprintf("must be of type %s", typeErr.Type))
		case errors.As(err, &maxErr):
			return validation.NewError("", "request body is too large")
		default:
			return validation.NewError("", err.Error())
		}
	}

	if dec.More() {
		return validation.NewError("", "request body must contain a single JSON object")
	}
	return nil
}
