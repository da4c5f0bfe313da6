package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

var (
	// ErrClosed is returned when a listener is added to a registry whose
	// owner has been removed from the layout tree.
	ErrClosed = errors.New("event target closed")
	// ErrNotSubscribed is returned when a subscription is removed twice.
	ErrNotSubscribed = errors.New("listener not registered")
)

// Registry stores listeners for a single event target and dispatches events
// to them in registration order.
type Registry struct {
	target string
	logger ports.Logger
	subs   map[ports.EventKind][]subscriptionEntry
	nextID int
	closed bool
	mu     sync.RWMutex
}

// NewRegistry creates a listener registry for the named target.
func NewRegistry(target string, logger ports.Logger) *Registry {
	return &Registry{
		target: target,
		logger: logger,
		subs:   make(map[ports.EventKind][]subscriptionEntry),
	}
}

// Target returns the name the registry was created with.
func (r *Registry) Target() string {
	return r.target
}

// AddListener registers a listener for the given kind.
func (r *Registry) AddListener(kind ports.EventKind, listener ports.Listener) (ports.Subscription, error) {
	if listener == nil {
		return nil, fmt.Errorf("add %s listener on %s: nil listener", kind, r.target)
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, fmt.Errorf("add %s listener on %s: %w", kind, r.target, ErrClosed)
	}
	r.nextID++
	id := r.nextID
	r.subs[kind] = append(r.subs[kind], subscriptionEntry{id: id, listener: listener})
	r.mu.Unlock()

	r.debug("listener added", "event", string(kind), "listener_id", id)
	return &subscription{registry: r, kind: kind, id: id}, nil
}

// Dispatch delivers an event of the given kind to every current listener.
// Listeners registered or removed during dispatch take effect on the next
// event.
func (r *Registry) Dispatch(kind ports.EventKind, at time.Time) int {
	r.mu.RLock()
	handlers := append([]subscriptionEntry(nil), r.subs[kind]...)
	r.mu.RUnlock()

	event := ports.Event{Kind: kind, Target: r.target, At: at}
	for _, entry := range handlers {
		entry.listener(event)
	}
	return len(handlers)
}

// Count returns the number of listeners registered for kind.
func (r *Registry) Count(kind ports.EventKind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[kind])
}

// Active returns the number of listeners across all kinds.
func (r *Registry) Active() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, entries := range r.subs {
		total += len(entries)
	}
	return total
}

// Close refuses further registrations. Existing listeners stay registered
// so that leaks remain observable.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

// Closed reports whether Close has been called.
func (r *Registry) Closed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}

func (r *Registry) remove(kind ports.EventKind, id int) error {
	r.mu.Lock()
	handlers := r.subs[kind]
	for i, entry := range handlers {
		if entry.id == id {
			r.subs[kind] = append(handlers[:i], handlers[i+1:]...)
			r.mu.Unlock()
			r.debug("listener removed", "event", string(kind), "listener_id", id)
			return nil
		}
	}
	r.mu.Unlock()
	return fmt.Errorf("remove %s listener %d on %s: %w", kind, id, r.target, ErrNotSubscribed)
}

func (r *Registry) debug(msg string, fields ...interface{}) {
	if r.logger == nil {
		return
	}
	r.logger.Debug(context.Background(), msg, append([]interface{}{"target", r.target}, fields...)...)
}

type subscription struct {
	registry *Registry
	kind     ports.EventKind
	id       int
}

func (s *subscription) Unsubscribe() error {
	return s.registry.remove(s.kind, s.id)
}

type subscriptionEntry struct {
	id       int
	listener ports.Listener
}

var _ ports.EventTarget = (*Registry)(nil)
