package logging

import (
	"context"

	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// NoOpLogger discards everything. Its zero value is ready to use.
type NoOpLogger struct{}

var _ ports.Logger = NoOpLogger{}

func (NoOpLogger) Debug(context.Context, string, ...interface{}) {}
func (NoOpLogger) Info(context.Context, string, ...interface{})  {}
func (NoOpLogger) Warn(context.Context, string, ...interface{})  {}
func (NoOpLogger) Error(context.Context, string, ...interface{}) {}
func (n NoOpLogger) With(...interface{}) ports.Logger            { return n }

// NewNoOpLogger returns a logger for callers that did not inject one.
func NewNoOpLogger() ports.Logger {
	return NoOpLogger{}
}

// OrNoOp returns logger, or a NoOpLogger when logger is nil.
func OrNoOp(logger ports.Logger) ports.Logger {
	if logger == nil {
		return NoOpLogger{}
	}
	return logger
}
