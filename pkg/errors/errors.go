// Package errors provides structured error handling for progressring.
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
	// KindConfig indicates invalid construction or configuration values.
	KindConfig
	// KindLayout indicates a layout pass failure.
	KindLayout
	// KindAnimation indicates an animation setup or tick failure.
	KindAnimation
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLayout:
		return "layout"
	case KindAnimation:
		return "animation"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error.
type Error struct {
	// Op is the operation that failed (e.g., "progressring.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error for op with a formatted message.
func New(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "progressring.Paint").
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

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
