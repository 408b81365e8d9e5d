package sqlrest

import (
	"context"
	"log/slog"
)

// QueryLogger records each command a Cursor is about to run.
type QueryLogger interface {
	LogQuery(ctx context.Context, command string, params []any)
}

// QueryLoggerFunc adapts a function to QueryLogger.
type QueryLoggerFunc func(ctx context.Context, command string, params []any)

// LogQuery calls f.
func (f QueryLoggerFunc) LogQuery(ctx context.Context, command string, params []any) {
	f(ctx, command, params)
}

type nopLogger struct{}

func (nopLogger) LogQuery(context.Context, string, []any) {}

// SlogLogger logs queries through a *slog.Logger at debug level.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a QueryLogger backed by logger. A nil logger uses
// slog.Default().
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// LogQuery emits a "sql query" record with sql and params attributes.
func (l *SlogLogger) LogQuery(ctx context.Context, command string, params []any) {
	l.logger.DebugContext(ctx, "sql query",
		slog.String("sql", command),
		slog.Any("params", params),
	)
}
