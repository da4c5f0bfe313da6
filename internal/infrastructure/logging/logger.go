package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// Options configures the zerolog adapter.
type Options struct {
	Writer        io.Writer
	Level         string
	HumanReadable bool
	Color         bool
	TimeFormat    string
	Layer         string
	Component     string
	Fields        map[string]interface{}
}

// Logger implements ports.Logger using zerolog.
type Logger struct {
	base   zerolog.Logger
	fields []interface{}
	layer  string
}

// New creates a Logger adapter with the supplied options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	output := writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.NoColor = !opts.Color
		console.TimeFormat = time.RFC3339
		if opts.TimeFormat != "" {
			console.TimeFormat = opts.TimeFormat
		}
		output = console
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	if len(opts.Fields) > 0 {
		base = base.With().Fields(mapToFields(opts.Fields)).Logger()
	}

	fields := make([]interface{}, 0, 2)
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}
	layer := opts.Layer
	if layer == "" {
		layer = "infrastructure"
	}

	return &Logger{
		base:   base,
		fields: fields,
		layer:  layer,
	}, nil
}

// Debug emits a debug log entry.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.DebugLevel, msg, fields...)
}

// Info emits an info log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.InfoLevel, msg, fields...)
}

// Warn emits a warning log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.WarnLevel, msg, fields...)
}

// Error emits an error log entry.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.ErrorLevel, msg, fields...)
}

// With derives a new logger with persistent fields.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return NoOpLogger{}
	}
	next := make([]interface{}, len(l.fields))
	copy(next, l.fields)
	next = append(next, fields...)
	return &Logger{
		base:   l.base,
		fields: next,
		layer:  l.layer,
	}
}

func (l *Logger) log(ctx context.Context, level zerolog.Level, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if event == nil {
		return
	}
	extras := map[string]interface{}{
		"layer": l.layer,
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		extras["correlation_id"] = id
	}
	event.Fields(mergeFields(l.fields, fields, extras)).Msg(msg)
}

func mapToFields(input map[string]interface{}) []interface{} {
	if len(input) == 0 {
		return nil
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make([]interface{}, 0, len(input)*2)
	for _, k := range keys {
		res = append(res, k, input[k])
	}
	return res
}

func mergeFields(base []interface{}, additions []interface{}, extras map[string]interface{}) []interface{} {
	store := make(map[string]interface{})
	order := make([]string, 0)

	addPair := func(key string, value interface{}) {
		if key == "" {
			return
		}
		if _, exists := store[key]; !exists {
			order = append(order, key)
		}
		store[key] = value
	}

	process := func(values []interface{}) {
		for i := 0; i+1 < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				continue
			}
			addPair(key, values[i+1])
		}
	}

	process(base)
	process(additions)
	if len(extras) > 0 {
		extraKeys := make([]string, 0, len(extras))
		for key, value := range extras {
			if value == nil {
				continue
			}
			if s, ok := value.(string); ok && s == "" {
				continue
			}
			extraKeys = append(extraKeys, key)
		}
		sort.Strings(extraKeys)
		for _, key := range extraKeys {
			addPair(key, extras[key])
		}
	}

	result := make([]interface{}, 0, len(order)*2)
	for _, key := range order {
		result = append(result, key, store[key])
	}
	return result
}

// compile-time assurance
var _ ports.Logger = (*Logger)(nil)
