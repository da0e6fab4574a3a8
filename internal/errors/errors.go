package errors

import "fmt"

// Kind represents the type of error
type Kind int

const (
	// ErrInvalidInput marks malformed user-supplied text. Recoverable: the
	// caller displays the message and re-prompts.
	ErrInvalidInput Kind = iota
	// ErrInvalidOperation marks a draw-lifecycle violation, like starting a
	// draw that is already active. Recoverable the same way.
	ErrInvalidOperation
)

// Error is an application-level error with a kind for classification
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying error
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

// Constructor functions for the two error kinds

func InvalidInput(msg string) *Error {
	return &Error{Kind: ErrInvalidInput, Message: msg}
}

func InvalidInputf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func InvalidOperation(msg string) *Error {
	return &Error{Kind: ErrInvalidOperation, Message: msg}
}

func InvalidOperationf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrInvalidOperation, Message: fmt.Sprintf(format, args...)}
}
