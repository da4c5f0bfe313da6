package tracking

import (
	"context"
	"errors"
	"sync"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
	pkgerrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

// WindowTarget is the name recorded for listeners attached to the window.
const WindowTarget = "window"

var trackedKinds = []ports.EventKind{ports.EventScroll, ports.EventResize}

type binding struct {
	target string
	kind   ports.EventKind
	sub    ports.Subscription
}

// Tracker attaches scroll and resize listeners to the window and every
// scrollable ancestor of the anchor and content nodes, and removes them
// again on Detach.
type Tracker struct {
	logger   ports.Logger
	mu       sync.Mutex
	bindings []binding
	attached bool
}

// NewTracker creates an idle tracker.
func NewTracker(logger ports.Logger) *Tracker {
	return &Tracker{logger: logging.OrNoOp(logger).With("component", "tracker")}
}

type namedTarget struct {
	name   string
	target ports.EventTarget
}

// Targets lists the event targets Attach would bind for the given nodes:
// the window first, then scroll ancestors of content, then any extra scroll
// ancestors of anchor. A node shared by both chains is listed once.
func Targets(window ports.Window, anchor, content ports.Node) []string {
	targets := collectTargets(window, anchor, content)
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.name)
	}
	return names
}

func collectTargets(window ports.Window, anchor, content ports.Node) []namedTarget {
	seen := make(map[ports.Node]struct{})
	var targets []namedTarget
	if window != nil {
		targets = append(targets, namedTarget{name: WindowTarget, target: window})
	}
	for _, chain := range [][]ports.Node{ScrollParents(content), ScrollParents(anchor)} {
		for _, p := range chain {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			targets = append(targets, namedTarget{name: p.Name(), target: p})
		}
	}
	return targets
}

// Attach registers listener for scroll and resize on every tracked target.
// When any registration is refused, the ones already made are rolled back
// and a LISTENER_ERROR is returned.
func (t *Tracker) Attach(ctx context.Context, window ports.Window, anchor, content ports.Node, listener ports.Listener) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.attached {
		return geometry.NewDomainError(geometry.ErrCodeState, "tracker already attached", nil, nil)
	}
	if listener == nil {
		return geometry.NewDomainError(geometry.ErrCodeValidation, "listener is required", nil, nil)
	}

	targets := collectTargets(window, anchor, content)
	bindings := make([]binding, 0, len(targets)*len(trackedKinds))
	for _, target := range targets {
		for _, kind := range trackedKinds {
			sub, err := target.target.AddListener(kind, listener)
			if err != nil {
				t.rollback(ctx, bindings)
				cause := pkgerrors.NewListenerError("attach", target.name, string(kind), err)
				t.logger.Error(ctx, "listener registration refused", "target", target.name, "event", string(kind), "error", err)
				return geometry.NewDomainError(geometry.ErrCodeListener, "attach listeners", cause, map[string]interface{}{
					"target": target.name,
					"event":  string(kind),
				})
			}
			bindings = append(bindings, binding{target: target.name, kind: kind, sub: sub})
		}
	}

	t.bindings = bindings
	t.attached = true
	t.logger.Debug(ctx, "listeners attached", "targets", len(targets), "listeners", len(bindings))
	return nil
}

// Detach removes every listener registered by Attach. Removal failures are
// logged and returned joined; the tracker is reset regardless.
func (t *Tracker) Detach(ctx context.Context) error {
	t.mu.Lock()
	bindings := t.bindings
	t.bindings = nil
	t.attached = false
	t.mu.Unlock()

	var errs []error
	for _, b := range bindings {
		if err := b.sub.Unsubscribe(); err != nil {
			t.logger.Warn(ctx, "listener removal failed", "target", b.target, "event", string(b.kind), "error", err)
			errs = append(errs, pkgerrors.NewListenerError("detach", b.target, string(b.kind), err))
		}
	}
	if len(bindings) > 0 {
		t.logger.Debug(ctx, "listeners detached", "listeners", len(bindings), "failures", len(errs))
	}
	return errors.Join(errs...)
}

// Attached returns the number of live listener registrations.
func (t *Tracker) Attached() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.bindings)
}

func (t *Tracker) rollback(ctx context.Context, bindings []binding) {
	for _, b := range bindings {
		if err := b.sub.Unsubscribe(); err != nil {
			t.logger.Warn(ctx, "rollback failed", "target", b.target, "event", string(b.kind), "error", err)
		}
	}
}
