package chunk

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind is the error class of a failed split or join.
type Kind uint8

const (
	IOFailure          Kind = iota // generic read/write failure (default)
	NotFound                       // path does not exist
	PermissionDenied               // insufficient rights to open/create
	InvalidInput                   // bad path text, bad chunk name, bad size
	PreconditionFailed             // too small to split, incomplete chunk set, target exists
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case InvalidInput:
		return "invalid input"
	case PreconditionFailed:
		return "precondition failed"
	default:
		return "io failure"
	}
}

// Naming errors (@see Index and BaseName).
var (
	ErrNoIndex      = errors.New("no trailing number found")
	ErrInvalidIndex = errors.New("invalid trailing number")
	ErrInvalidName  = errors.New("invalid filename")
	ErrInvalidText  = errors.New("invalid UTF-8")
)

// Error is returned by all split and join operations.
// The message is meant to be shown to the user as it is.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // cause (optional)
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf returns a new *Error without a cause.
func Errorf(kind Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error with the given message and cause.
// The kind is derived from the cause (@see KindOf).
func Wrap(err error, msg string) *Error {
	return &Error{Kind: KindOf(err), Msg: msg, Err: err}
}

// FromIO returns an *Error for a filesystem error with a short generic message.
func FromIO(err error) *Error {
	kind := KindOf(err)
	msg := "Unknown error."
	switch kind {
	case NotFound:
		msg = "File not found."
	case PermissionDenied:
		msg = "Permission denied."
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf classifies any error.
// Unknown errors are IOFailure.
func KindOf(err error) Kind {
	var e *Error
	switch {
	case err == nil:
		return IOFailure
	case errors.As(err, &e):
		return e.Kind
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, fs.ErrExist):
		return PreconditionFailed
	case errors.Is(err, ErrNoIndex),
		errors.Is(err, ErrInvalidIndex),
		errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidText):
		return InvalidInput
	default:
		return IOFailure
	}
}
