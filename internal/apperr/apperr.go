// Package apperr defines the failure taxonomy shared by validators, services
// and the response layer. Callers classify failures with KindOf, never by
// inspecting message text.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// Internal is any unexpected storage or runtime failure. It is also the
	// kind of every error that was never classified.
	Internal Kind = iota
	Unauthenticated
	ValidationFailed
	NotFound
	InvalidDate
	Conflict
	RateLimited
)

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "unauthenticated"
	case ValidationFailed:
		return "validation_failed"
	case NotFound:
		return "not_found"
	case InvalidDate:
		return "invalid_date"
	case Conflict:
		return "conflict"
	case RateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// ClientError reports whether failures of this kind are caused by the caller
// and may be shown to them verbatim.
func (k Kind) ClientError() bool {
	return k != Internal
}

// Error is a classified failure. Fields names offending input fields and is
// only set for ValidationFailed and InvalidDate.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
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

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies err. The message is what callers see; err is kept for logs.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation builds a ValidationFailed error. fields maps field name to a
// short reason and may be nil.
func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: ValidationFailed, Message: message, Fields: fields}
}

func InvalidDateField(field, value string) *Error {
	return &Error{
		Kind:    InvalidDate,
		Message: "Invalid date format",
		Fields:  map[string]string{field: fmt.Sprintf("cannot parse %q as a date", value)},
	}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: Unauthenticated, Message: message}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
