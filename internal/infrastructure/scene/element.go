package scene

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// Element is a rectangular node. Its rect is expressed relative to the
// top-left corner of its parent, or of the document when it has no parent.
// Fixed elements are expressed relative to the viewport.
type Element struct {
	mu          sync.RWMutex
	name        string
	parent      *Element
	window      *Window
	local       geometry.Rect
	overflow    ports.Overflow
	positioning ports.Positioning
	scrollX     float64
	scrollY     float64
	removed     bool
	registry    *events.Registry
}

// Name implements ports.Node.
func (e *Element) Name() string { return e.name }

// Parent implements ports.Node.
func (e *Element) Parent() ports.Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// Overflow implements ports.Node.
func (e *Element) Overflow() ports.Overflow {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.overflow
}

// Positioning implements ports.Node.
func (e *Element) Positioning() ports.Positioning {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.positioning
}

// LocalRect returns the rect relative to the parent.
func (e *Element) LocalRect() geometry.Rect {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.local
}

// Scroll returns the element's own scroll offsets.
func (e *Element) Scroll() geometry.Point {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return geometry.Point{X: e.scrollX, Y: e.scrollY}
}

// BoundingRect returns the element's rect in viewport coordinates, taking
// ancestor scroll offsets and the document scroll into account.
func (e *Element) BoundingRect() geometry.Rect {
	rect := e.LocalRect()
	fixed := e.Positioning() == ports.PositionFixed
	for p := e.parent; p != nil && !fixed; p = p.parent {
		local := p.LocalRect()
		scroll := p.Scroll()
		rect = rect.Translate(local.X-scroll.X, local.Y-scroll.Y)
		fixed = p.Positioning() == ports.PositionFixed
	}
	if !fixed && e.window != nil {
		sx, sy := e.window.scroll()
		rect = rect.Translate(-sx, -sy)
	}
	return rect
}

// AddListener implements ports.EventTarget.
func (e *Element) AddListener(kind ports.EventKind, listener ports.Listener) (ports.Subscription, error) {
	return e.registry.AddListener(kind, listener)
}

// Listeners returns the number of listeners attached to the element.
func (e *Element) Listeners() int {
	return e.registry.Active()
}

// SetRect replaces the local rect. Moving an element does not fire events.
func (e *Element) SetRect(rect geometry.Rect) {
	e.mu.Lock()
	e.local = rect
	e.mu.Unlock()
}

// MoveBy translates the local rect.
func (e *Element) MoveBy(dx, dy float64) {
	e.mu.Lock()
	e.local = e.local.Translate(dx, dy)
	e.mu.Unlock()
}

// SetSize changes the element size and fires a resize event on it.
func (e *Element) SetSize(width, height float64) {
	e.mu.Lock()
	e.local = e.local.WithSize(width, height)
	e.mu.Unlock()
	e.registry.Dispatch(ports.EventResize, e.now())
}

// ScrollTo sets the element's scroll offsets and fires a scroll event.
func (e *Element) ScrollTo(x, y float64) {
	e.mu.Lock()
	e.scrollX = clampScroll(x)
	e.scrollY = clampScroll(y)
	e.mu.Unlock()
	e.registry.Dispatch(ports.EventScroll, e.now())
}

// ScrollBy moves the element's scroll offsets by a delta.
func (e *Element) ScrollBy(dx, dy float64) {
	s := e.Scroll()
	e.ScrollTo(s.X+dx, s.Y+dy)
}

// Remove detaches the element from the host. Later listener registrations
// are refused.
func (e *Element) Remove() {
	e.mu.Lock()
	e.removed = true
	e.mu.Unlock()
	e.registry.Close()
}

// Removed reports whether Remove has been called.
func (e *Element) Removed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.removed
}

func (e *Element) now() time.Time {
	if e.window != nil {
		return e.window.clock()
	}
	return time.Now()
}

var _ ports.Node = (*Element)(nil)
