package runtime

import (
	"errors"
	"fmt"
)

// ErrorKind classifies evaluation faults. The kind is internal detail kept
// for precise testing; callers outside the runtime see one error type with
// a human-readable message.
type ErrorKind int

const (
	ErrUnboundName ErrorKind = iota
	ErrTypeMismatch
	ErrMissingArgument
	ErrTooManyArguments
	ErrMalformedMethod
	ErrAttributeNotFound
	ErrIndexOutOfRange
	ErrDivisionByZero
	ErrInvalidValue
	ErrNoEnclosingLoop
	ErrUnsupportedNode
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnboundName:
		return "UnboundName"
	case ErrTypeMismatch:
		return "TypeMismatch"
	case ErrMissingArgument:
		return "MissingArgument"
	case ErrTooManyArguments:
		return "TooManyArguments"
	case ErrMalformedMethod:
		return "MalformedMethod"
	case ErrAttributeNotFound:
		return "AttributeNotFound"
	case ErrIndexOutOfRange:
		return "IndexOutOfRange"
	case ErrDivisionByZero:
		return "DivisionByZero"
	case ErrInvalidValue:
		return "InvalidValue"
	case ErrNoEnclosingLoop:
		return "NoEnclosingLoop"
	case ErrUnsupportedNode:
		return "UnsupportedNode"
	default:
		return fmt.Sprintf("unknown_error_kind_%d", int(k))
	}
}

// Error is the uniform evaluation failure surfaced by the core.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds a classified evaluation error.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the classification of err when it is a runtime Error.
func KindOf(err error) (ErrorKind, bool) {
	var rErr *Error
	if errors.As(err, &rErr) {
		return rErr.Kind, true
	}
	return 0, false
}
