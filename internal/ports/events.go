package ports

import "time"

// EventKind names the host events that invalidate a placement.
type EventKind string

const (
	// EventScroll fires when the window or a scroll container scrolls.
	EventScroll EventKind = "scroll"
	// EventResize fires when the window or an element changes size.
	EventResize EventKind = "resize"
)

// Event is delivered to listeners. Target names the node that fired it.
type Event struct {
	Kind   EventKind
	Target string
	At     time.Time
}

// Listener handles an event. Listeners run synchronously on the host's
// event thread and must not block.
type Listener func(Event)

// EventTarget is anything listeners can be attached to: the window or an
// element. AddListener fails when the host refuses the registration, for
// example because the target has been detached.
type EventTarget interface {
	AddListener(kind EventKind, listener Listener) (Subscription, error)
}

// Subscription represents a registered listener. Unsubscribe removes it and
// reports an error when the host could not remove it; callers treat that as
// a diagnostic, not a fatal failure.
type Subscription interface {
	Unsubscribe() error
}
