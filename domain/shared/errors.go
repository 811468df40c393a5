// Package shared holds the building blocks common to every subdomain:
// the domain error taxonomy and the Money value object.
//
// Errors are built on sentinel values so callers can classify them with
// errors.Is, and every constructed error captures its stack at creation
// time. Formatting is deferred until a log line actually needs it.
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors. They identify the category of a domain failure and
// never carry instance-specific context themselves.
var (
	// ErrInvalidInput covers malformed input: bad CPF, bad email,
	// non-positive quantities and so on.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks lookups that came back empty.
	ErrNotFound = errors.New("not found")

	// ErrBusinessRule marks requests that are well-formed but violate a
	// domain rule, such as finalizing an empty order.
	ErrBusinessRule = errors.New("business rule violation")

	// ErrInvalidState marks operations attempted in a lifecycle state
	// that does not allow them.
	ErrInvalidState = errors.New("invalid state")
)

// DomainError is a structured error carrying business context and the
// stack of its creation point. It wraps one of the sentinels above.
type DomainError struct {
	// Err is the underlying sentinel, reachable through errors.Is.
	Err error

	// Entity names the aggregate the error belongs to ("pedido", "cliente").
	Entity string

	// Field optionally names the offending field for validation errors.
	Field string

	// Message is the human-readable description surfaced to callers.
	Message string

	stack []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Expected reports that this error represents an anticipated business
// condition rather than a fault. The outcome layer uses this marker to
// route domain errors as handled failures.
func (e *DomainError) Expected() bool {
	return true
}

// Stack formats the captured stack. Only called when a log line is
// actually emitted.
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// Stacker is implemented by errors that can report their origin stack.
type Stacker interface {
	Stack() []string
}

// CaptureStack records the current call stack.
// skip is the number of frames to drop, usually 3: runtime.Callers,
// CaptureStack and the error constructor itself.
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders stack frames as "file:line function" strings,
// filtering runtime internals and keeping at most 10 frames.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// NewValidationError creates an ErrInvalidInput domain error for a field.
func NewValidationError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// NewNotFoundError creates an ErrNotFound domain error.
func NewNotFoundError(entity, message string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewBusinessRuleError creates an ErrBusinessRule domain error.
func NewBusinessRuleError(entity, message string) error {
	return &DomainError{
		Err:     ErrBusinessRule,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewInvalidStateError creates an ErrInvalidState domain error.
func NewInvalidStateError(entity, message string) error {
	return &DomainError{
		Err:     ErrInvalidState,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}
