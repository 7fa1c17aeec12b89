// Package validation checks decoded request bodies against their declared
// schemas and reports every violation as a field path plus message.
//
// Schemas are plain structs carrying go-playground/validator tags. Besides the
// built-in tags two custom ones are registered:
//
//   - objectid: a 24 character hexadecimal identifier
//   - future:   a time strictly after the validator's clock
//
// domain.Nullable fields are validated against their value when one is set and
// skipped when the field was omitted or sent as null.
package validation
