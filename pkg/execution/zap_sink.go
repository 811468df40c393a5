package execution

import (
	"go.uber.org/zap"

	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

// ZapSink adapts a zap logger to the Sink interface. Unexpected
// failures carry their origin stack when the cause provides one.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink creates a sink over log. A nil log yields a no-op sink.
func NewZapSink(log *zap.Logger) *ZapSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapSink{log: log}
}

func (s *ZapSink) Debug(operation, message string) {
	s.log.Debug(message, zap.String("operation", operation))
}

func (s *ZapSink) Warn(operation, message string) {
	s.log.Warn(message, zap.String("operation", operation))
}

func (s *ZapSink) Error(operation, message string, cause error) {
	fields := []zap.Field{zap.String("operation", operation)}
	if cause != nil {
		fields = append(fields, zap.Error(cause))
		if stacker, ok := cause.(shared.Stacker); ok {
			fields = append(fields, zap.Strings("origin_stack", stacker.Stack()))
		}
	}
	s.log.Error(message, fields...)
}

var _ Sink = (*ZapSink)(nil)
