package logging

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// BufferedLogger is a ports.Logger that queues entries in an EventBuffer
// instead of writing them. Entries below its minimum level are discarded.
type BufferedLogger struct {
	buffer *EventBuffer
	min    zerolog.Level
	fields []interface{}
}

// NewBufferedLogger queues every level into buffer.
func NewBufferedLogger(buffer *EventBuffer) *BufferedLogger {
	return &BufferedLogger{buffer: buffer, min: zerolog.DebugLevel}
}

// AtLevel returns a copy that drops entries below level.
func (l *BufferedLogger) AtLevel(level string) (*BufferedLogger, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	next := *l
	next.min = parsed
	return &next, nil
}

func (l *BufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.queue(ctx, zerolog.DebugLevel, msg, fields)
}

func (l *BufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.queue(ctx, zerolog.InfoLevel, msg, fields)
}

func (l *BufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.queue(ctx, zerolog.WarnLevel, msg, fields)
}

func (l *BufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.queue(ctx, zerolog.ErrorLevel, msg, fields)
}

// With returns a child that prepends fields to every entry.
func (l *BufferedLogger) With(fields ...interface{}) ports.Logger {
	next := *l
	next.fields = append(append([]interface{}(nil), l.fields...), fields...)
	return &next
}

func (l *BufferedLogger) queue(ctx context.Context, level zerolog.Level, msg string, fields []interface{}) {
	if l == nil || l.buffer == nil || level < l.min {
		return
	}
	l.buffer.add(bufferedEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: append(append([]interface{}(nil), l.fields...), fields...),
	})
}
