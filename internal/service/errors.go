package service

import "fmt"

type Code int

const (
	CodeInvalid Code = iota
	CodeUnauthenticated
	CodeUnauthorized
	CodeNotFound
	CodeConflict
	CodeInternal
)

// Error is the failure taxonomy every procedure reports through:
// validation, unauthenticated, unauthorized, not found, conflict or
// internal. Message is what the client sees in the envelope.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Invalid(message string) *Error {
	return &Error{Code: CodeInvalid, Message: message}
}

func Unauthenticated(message string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// Internal wraps an unexpected data-layer failure; the client only ever
// sees the generic message.
func Internal(err error) *Error {
	return &Error{Code: CodeInternal, Message: "Unknown error", Err: err}
}
