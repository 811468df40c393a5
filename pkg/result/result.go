// Package result defines the uniform outcome type every use-case
// operation returns. A Result is in exactly one of three states:
//
//   - success, carrying a value;
//   - handled failure, carrying a message for an expected business or
//     validation condition;
//   - unexpected failure, carrying the original fault.
//
// Expected conditions never cross layer boundaries as errors; they
// travel inside a Result and surface to callers as client errors.
package result

import "errors"

type state int

const (
	stateSuccess state = iota
	stateHandled
	stateUnexpected
)

// Result is a discriminated union over the three outcome states.
type Result[T any] struct {
	state   state
	value   T
	message string
	cause   error
}

// Ok creates a successful Result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{state: stateSuccess, value: value}
}

// Fail creates a handled failure carrying a human-readable message.
func Fail[T any](message string) Result[T] {
	return Result[T]{state: stateHandled, message: message}
}

// Unexpected creates an unexpected failure from a caught fault.
func Unexpected[T any](cause error) Result[T] {
	return Result[T]{state: stateUnexpected, message: cause.Error(), cause: cause}
}

// expected is the marker implemented by domain errors that represent
// anticipated business conditions. Checked structurally so this package
// stays free of domain imports.
type expected interface {
	Expected() bool
}

// FromError classifies err into the matching failure state: errors that
// mark themselves as expected become handled failures with the error's
// message, everything else becomes an unexpected failure.
func FromError[T any](err error) Result[T] {
	var exp expected
	if errors.As(err, &exp) && exp.Expected() {
		return Fail[T](err.Error())
	}
	return Unexpected[T](err)
}

// IsSuccess reports whether the Result carries a value.
func (r Result[T]) IsSuccess() bool { return r.state == stateSuccess }

// IsHandledFailure reports whether the Result is an expected failure.
func (r Result[T]) IsHandledFailure() bool { return r.state == stateHandled }

// IsUnexpectedFailure reports whether the Result carries a fault.
func (r Result[T]) IsUnexpectedFailure() bool { return r.state == stateUnexpected }

// Value returns the success value. Meaningful only when IsSuccess.
func (r Result[T]) Value() T { return r.value }

// Message returns the failure message for either failure state.
func (r Result[T]) Message() string { return r.message }

// Cause returns the original fault of an unexpected failure, nil otherwise.
func (r Result[T]) Cause() error { return r.cause }
