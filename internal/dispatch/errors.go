package dispatch

import (
	"errors"
	"fmt"

	"github.com/conduit-lang/cldispatch/pkg/cl"
)

var (
	// ErrUnsupportedOperation means the handle was fine but its
	// implementation has no slot for the entry point.
	ErrUnsupportedOperation = errors.New("operation not supported by implementation")

	// ErrUnusable is returned for calls routed to an implementation whose
	// table failed to initialize.
	ErrUnusable = errors.New("implementation is unusable")

	// ErrNotReady is returned for calls that reach an implementation
	// whose driver is still opening.
	ErrNotReady = errors.New("implementation is still attaching")

	// ErrUnknownEntryPoint is returned by Loader.Call for names missing
	// from the registry.
	ErrUnknownEntryPoint = errors.New("unknown entry point")

	// ErrArity means a call supplied the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrEmptyHandleList means a handle array governing a call was empty.
	ErrEmptyHandleList = errors.New("governing handle list is empty")

	// ErrBadArgument means an argument had a type the entry point cannot
	// accept.
	ErrBadArgument = errors.New("invalid argument")

	ErrZeroHandle            = errors.New("zero handle")
	ErrHandleInUse           = errors.New("handle already registered")
	ErrUnknownKind           = errors.New("unknown handle kind")
	ErrNilImplementation     = errors.New("nil implementation")
	ErrUnknownImplementation = errors.New("implementation is not attached")
	ErrClosed                = errors.New("loader is closed")
)

// InvalidHandleError reports a governing handle that is absent, released,
// or registered under another kind.
type InvalidHandleError struct {
	Kind   cl.Kind
	Handle cl.Handle
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("invalid %s handle %s", e.Kind, e.Handle)
}

// Code returns the kind's designated invalid-handle code.
func (e *InvalidHandleError) Code() cl.ErrorCode {
	return e.Kind.InvalidCode()
}

// EntryPointUnavailableError is raised while building a table when an
// implementation does not export an entry point its version requires.
type EntryPointUnavailableError struct {
	Implementation string
	Name           string
}

func (e *EntryPointUnavailableError) Error() string {
	return fmt.Sprintf("%s: entry point %s is unavailable", e.Implementation, e.Name)
}

// Is lets errors.Is(err, ErrUnusable) match table initialization failures.
func (e *EntryPointUnavailableError) Is(target error) bool {
	return target == ErrUnusable
}

// CodeOf maps a dispatch error to the native code a caller would see.
func CodeOf(err error) cl.ErrorCode {
	var invalid *InvalidHandleError
	switch {
	case err == nil:
		return cl.Success
	case errors.As(err, &invalid):
		return invalid.Code()
	case errors.Is(err, ErrArity), errors.Is(err, ErrEmptyHandleList), errors.Is(err, ErrBadArgument):
		return cl.InvalidValue
	default:
		return cl.InvalidOperation
	}
}
