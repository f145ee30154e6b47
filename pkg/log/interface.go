package log

import "context"

// Logger defines the interface for structured logging.
// Implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, template string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, template string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, template string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, template string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, template string, args ...any)
}

// Init initializes and returns a new Logger with the provided Zap configuration.
func Init(cfg ZapConfig) Logger {
	logger := &zapLogger{cfg: &cfg}
	logger.init()
	return logger
}

// Noop returns a Logger that discards everything. Intended for tests.
func Noop() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
