// Package errors provides structured error handling for rendercore.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMount indicates misuse of a host or mount item that was ignored.
	KindMount
	// KindInvariant indicates a violated precondition.
	KindInvariant
	// KindPool indicates a content pool failure.
	KindPool
	// KindConfig indicates a configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindMount:
		return "mount"
	case KindInvariant:
		return "invariant"
	case KindPool:
		return "pool"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// MountError represents a structured error reported by the mount layer.
type MountError struct {
	// Op is the operation that failed (e.g., "host.Detach").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Item describes the mount item involved, if any.
	Item string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MountError) Error() string {
	if e.Item != "" {
		return fmt.Sprintf("%s [%s] item=%s: %v", e.Op, e.Kind, e.Item, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MountError) Unwrap() error {
	return e.Err
}

// InvariantError is the panic value used when a caller breaks a precondition
// the mount layer does not recover from, such as mounting nil content.
type InvariantError struct {
	Op      string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: invariant violated: %s", e.Op, e.Message)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "host.Bind").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by rendercore.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MountError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
