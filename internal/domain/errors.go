package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
)

// Error pairs a sentinel with the exact message the client should see.
// Error() returns only that message, so handlers can echo it without
// exposing wrapped internals.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string { return e.message }
func (e *Error) Unwrap() error { return e.kind }

// E builds a client-facing error of the given sentinel kind.
func E(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

// FieldError reports a single failing field during signup validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failing field so callers can report all
// problems at once instead of one at a time.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msg := e.Fields[0].Message
	for _, f := range e.Fields[1:] {
		msg += "; " + f.Message
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return ErrBadRequest }
