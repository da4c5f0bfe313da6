package logging

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

const defaultBufferLimit = 1000

type bufferedEntry struct {
	ctx    context.Context
	level  zerolog.Level
	msg    string
	fields []interface{}
}

// EventBuffer holds log events while the terminal is owned by the playground
// so they can be replayed once the alternate screen is released.
type EventBuffer struct {
	mu      sync.Mutex
	limit   int
	dropped int
	events  []bufferedEntry
}

// NewEventBuffer creates a buffer with the provided capacity (defaults to 1000).
func NewEventBuffer(limit int) *EventBuffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &EventBuffer{
		limit:  limit,
		events: make([]bufferedEntry, 0, limit),
	}
}

func (b *EventBuffer) add(entry bufferedEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == b.limit {
		b.dropped++
		copy(b.events, b.events[1:])
		b.events[len(b.events)-1] = entry
		return
	}
	b.events = append(b.events, entry)
}

// Len reports how many events are waiting to be flushed.
func (b *EventBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// Dropped reports how many of the oldest events were discarded once the
// buffer reached its limit.
func (b *EventBuffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Messages returns the buffered messages in emission order.
func (b *EventBuffer) Messages() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, entry := range b.events {
		out = append(out, entry.msg)
	}
	return out
}

// Flush replays buffered events using the provided logger, preserving ordering.
func (b *EventBuffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	events := make([]bufferedEntry, len(b.events))
	copy(events, b.events)
	b.events = b.events[:0]
	dropped := b.dropped
	b.dropped = 0
	b.mu.Unlock()

	if dropped > 0 {
		delegate.Warn(context.Background(), "log buffer overflowed", "dropped", dropped)
	}

	for _, entry := range events {
		switch entry.level {
		case zerolog.DebugLevel:
			delegate.Debug(entry.ctx, entry.msg, entry.fields...)
		case zerolog.WarnLevel:
			delegate.Warn(entry.ctx, entry.msg, entry.fields...)
		case zerolog.ErrorLevel:
			delegate.Error(entry.ctx, entry.msg, entry.fields...)
		default:
			delegate.Info(entry.ctx, entry.msg, entry.fields...)
		}
	}
}
