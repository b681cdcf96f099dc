package logging

import "context"

type discardLogger struct{}

// Discard returns a Logger that drops everything. Useful in tests and as a
// default before configuration is loaded.
func Discard() Logger { return discardLogger{} }

func (discardLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (discardLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (discardLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (discardLogger) Error(ctx context.Context, msg string, args ...any) {}
func (discardLogger) With(args ...any) Logger                            { return discardLogger{} }
