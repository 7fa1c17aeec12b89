package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// MessageEmptyPatch is reported when a partial update carries no fields.
const MessageEmptyPatch = "at least one field must be provided"

// Patch is implemented by partial-update schemas.
type Patch interface {
	// Empty reports whether no field was supplied.
	Empty() bool
}

// Validator validates request schemas.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New creates a Validator using the wall clock.
func New() *Validator {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Validator whose "future" tag compares against now.
func NewWithClock(now func() time.Time) *Validator {
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled()), now: now}

	v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	v.validate.RegisterCustomTypeFunc(nullableValue,
		domain.Nullable[string]{},
		domain.Nullable[time.Time]{},
		domain.Nullable[int]{},
	)

	// Registration only fails for empty tags or nil funcs.
	_ = v.validate.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return domain.IsValidID(fl.Field().String())
	})
	_ = v.validate.RegisterValidation("future", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && t.After(v.now())
	})

	return v
}

// nullableValue exposes the wrapped value of a set Nullable and nil otherwise,
// so that omitempty skips absent and null fields.
func nullableValue(field reflect.Value) interface{} {
	switch n := field.Interface().(type) {
	case domain.Nullable[string]:
		if n.IsSet() {
			return n.Value
		}
	case domain.Nullable[time.Time]:
		if n.IsSet() {
			return n.Value
		}
	case domain.Nullable[int]:
		if n.IsSet() {
			return n.Value
		}
	}
	return nil
}

// Validate checks s against its tags. Patches with no field set are rejected
// before any tag runs. Returns *Error on violation.
func (v *Validator) Validate(s interface{}) error {
	if p, ok := s.(Patch); ok && p.Empty() {
		return NewError("", MessageEmptyPatch)
	}

	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate %T: %w", s, err)
	}

	out := &Error{Issues: make([]Issue, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Issues = append(out.Issues, Issue{Path: fieldPath(fe), Message: message(fe)})
	}
	return out
}

// fieldPath strips the schema type name from the error namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// oneOfParam matches the values of a oneof tag, quoted values may hold spaces.
var oneOfParam = regexp.MustCompile(`'[^']*'|\S+`)

func oneOfValues(param string) []string {
	values := oneOfParam.FindAllString(param, -1)
	for i, v := range values {
		values[i] = strings.Trim(v, "'")
	}
	return values
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(oneOfValues(fe.Param()), ", ")
	case "objectid":
		return "must be a 24 character hex string"
	case "future":
		return "must be in the future"
	default:
		return "is invalid"
	}
}
