// Package apperr is the error taxonomy shared by services and handlers.
// Services return these; handlers translate them to HTTP status codes.
package apperr

import "fmt"

// ValidationError is a 400: malformed or missing input, or a domain rule
// the caller can fix (registering as a company without a title, applying
// without a seeker profile).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PermissionError is a 403: the caller is authenticated but not allowed to
// perform this specific action.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

func Permission(message string) *PermissionError {
	return &PermissionError{Message: message}
}

// NotFoundError is a 404. Resources outside the caller's ownership scope
// report not-found too, so ids can't be probed.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}
