package somgo

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with somgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMapID adds the map identifier to every record.
func (l *Logger) WithMapID(id uuid.UUID) *Logger {
	return &Logger{
		Logger: l.Logger.With("map_id", id.String()),
	}
}

// WithGrid adds the lattice shape to every record.
func (l *Logger) WithGrid(width, height, vectorLen int) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			slog.Group("grid",
				"width", width,
				"height", height,
				"vector_len", vectorLen,
			),
		),
	}
}

// LogCreate logs the construction of a map.
func (l *Logger) LogCreate(radius, totalSteps, learningRate float32, stride Stride) {
	l.Info("map created",
		"radius", radius,
		"total_steps", totalSteps,
		"learning_rate", learningRate,
		"stride", stride.String(),
	)
}

// LogReset logs a weight reinitialization.
func (l *Logger) LogReset(weights int, duration time.Duration) {
	l.Debug("map reset",
		"weights", weights,
		"duration", duration,
	)
}

// LogTrainingStep logs a single training update.
func (l *Logger) LogTrainingStep(step uint64, winX, winY int, distSq, tExp float32) {
	l.Debug("training step",
		"step", step,
		"win_x", winX,
		"win_y", winY,
		"dist_sq", distSq,
		"t_exp", tExp,
	)
}

// LogFault logs a precondition violation before it reaches the fault handler.
func (l *Logger) LogFault(err error) {
	l.Error("precondition violated",
		"error", err,
	)
}

// LogClose logs the release of the weight buffer.
func (l *Logger) LogClose(steps uint64) {
	l.Debug("map closed",
		"steps", steps,
	)
}
