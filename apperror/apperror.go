// Package apperror defines the closed set of error kinds returned by the room desk.
package apperror

import "errors"

// Kind classifies a failure.
type Kind string

const (
	// KindUnknown is never produced by the desk; KindOf returns it for foreign errors.
	KindUnknown Kind = "UNKNOWN"

	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindDuplicateKey    Kind = "DUPLICATE_KEY"
	KindNotFound        Kind = "NOT_FOUND"
	KindInvalidState    Kind = "INVALID_STATE"
	KindIOFailure       Kind = "IO_FAILURE"
)

// Error is the desk error type.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind around cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Sentinels for errors.Is checks, e.g. errors.Is(err, apperror.ErrNotFound).
var (
	ErrInvalidArgument = New(KindInvalidArgument, "invalid argument")
	ErrDuplicateKey    = New(KindDuplicateKey, "duplicate key")
	ErrNotFound        = New(KindNotFound, "not found")
	ErrInvalidState    = New(KindInvalidState, "invalid state")
	ErrIOFailure       = New(KindIOFailure, "io failure")
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Label is the human-readable prefix printed for each kind.
func (k Kind) Label() string {
	switch k {
	case KindInvalidArgument:
		return "Input Error"
	case KindDuplicateKey:
		return "Duplicate Error"
	case KindNotFound:
		return "Not Found Error"
	case KindInvalidState:
		return "State Error"
	case KindIOFailure:
		return "IO Error"
	default:
		return "Unexpected Error"
	}
}
