package validation

import (
	"fmt"
	"strings"
)

// Issue is a single schema violation.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error is returned when a payload does not satisfy its schema.
type Error struct {
	Issues []Issue
}

// Error implements the error interface.
func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", issue.Path, issue.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError builds an Error holding a single issue.
func NewError(path, message string) *Error {
	return &Error{Issues: []Issue{{Path: path, Message: message}}}
}
