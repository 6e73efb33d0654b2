package somgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is reported when a grid dimension or the vector length is below one.
	ErrInvalidDimension = errors.New("somgo: dimension must be at least 1")

	// ErrOutOfRange is reported when grid coordinates do not address a prototype.
	ErrOutOfRange = errors.New("somgo: grid coordinates out of range")

	// ErrAllocation is reported when the Allocator returns a buffer of the wrong length.
	ErrAllocation = errors.New("somgo: allocator returned a buffer of the wrong length")

	// ErrClosed is reported when a map is used after Close.
	ErrClosed = errors.New("somgo: map is closed")

	// ErrNotInitialized is reported when a nil or zero-value map is used.
	// Maps must be created with New.
	ErrNotInitialized = errors.New("somgo: map not initialized, use New")
)

// PreconditionError describes a violated caller contract.
//
// The sentinel error (ErrInvalidDimension, ErrOutOfRange, ...) can be accessed
// via errors.Unwrap or matched with errors.Is.
type PreconditionError struct {
	Op     string
	Detail string
	cause  error
}

func (e *PreconditionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.cause)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Op, e.cause, e.Detail)
}

func (e *PreconditionError) Unwrap() error { return e.cause }

func precondition(op string, cause error, format string, args ...any) *PreconditionError {
	return &PreconditionError{
		Op:     op,
		Detail: fmt.Sprintf(format, args...),
		cause:  cause,
	}
}

// FaultHandler receives every precondition violation.
//
// The engine treats violations as fatal: a handler is expected not to return
// (panic, os.Exit, runtime.Goexit). If it does return, the failing operation
// aborts without touching the weight buffer and yields zero values.
type FaultHandler func(err error)

// PanicFaultHandler is the default FaultHandler. It panics with err.
func PanicFaultHandler(err error) {
	panic(err)
}
