// Package execution provides the single seam through which every
// use-case operation runs. The wrapper guarantees two things: no fault
// escapes past it, and every unexpected fault is logged exactly once at
// its origin, tagged with a stable operation name.
package execution

import (
	"fmt"

	"github.com/gfsouzaTI/SnackTech/pkg/result"
)

// Sink receives the diagnostic trace of wrapped operations. It is the
// only logging dependency the execution core has; the concrete logger
// is injected behind it.
type Sink interface {
	// Debug records a successfully completed operation.
	Debug(operation, message string)

	// Warn records a handled failure. Expected business conditions are
	// never incidents.
	Warn(operation, message string)

	// Error records an unexpected failure with its cause.
	Error(operation, message string, cause error)
}

// Run executes fn and returns its Result, applying the propagation
// policy:
//
//   - a Result returned normally passes through unchanged; success is
//     traced at debug level and handled failures at warn level;
//   - a panic is recovered, converted into an unexpected failure and
//     logged as an error; it never propagates past this boundary;
//   - an unexpected failure returned by fn is logged as an error here,
//     and nowhere else.
func Run[T any](sink Sink, operation string, fn func() result.Result[T]) (res result.Result[T]) {
	defer func() {
		if recovered := recover(); recovered != nil {
			cause := recoveredError(recovered)
			sink.Error(operation, cause.Error(), cause)
			res = result.Unexpected[T](cause)
		}
	}()

	res = fn()

	switch {
	case res.IsSuccess():
		sink.Debug(operation, "operação concluída")
	case res.IsHandledFailure():
		sink.Warn(operation, res.Message())
	default:
		sink.Error(operation, res.Message(), res.Cause())
	}
	return res
}

func recoveredError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", recovered)
}
