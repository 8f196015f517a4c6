package errors

import (
	"go.uber.org/zap"

	"github.com/go-drift/rendercore/pkg/logging"
)

// LogHandler is an ErrorHandler that logs through the process zap logger.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Logger overrides the process logger when set.
	Logger *zap.Logger
}

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logging.Named("errors")
}

// HandleError logs a MountError.
func (h *LogHandler) HandleError(err *MountError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Item != "" {
		fields = append(fields, zap.String("item", err.Item))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("rendercore error", fields...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("rendercore panic", fields...)
}
