package scene

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// WindowName is the event target name reported by the window.
const WindowName = "window"

// Window is the root viewport of a scene.
type Window struct {
	mu       sync.RWMutex
	viewport geometry.Viewport
	clock    ports.Clock
	registry *events.Registry
}

// NewWindow creates a window with the given viewport.
func NewWindow(viewport geometry.Viewport, clock ports.Clock, logger ports.Logger) *Window {
	if clock == nil {
		clock = time.Now
	}
	return &Window{
		viewport: viewport,
		clock:    clock,
		registry: events.NewRegistry(WindowName, logger),
	}
}

// Viewport returns the current viewport size and scroll offsets.
func (w *Window) Viewport() geometry.Viewport {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.viewport
}

// AddListener implements ports.EventTarget.
func (w *Window) AddListener(kind ports.EventKind, listener ports.Listener) (ports.Subscription, error) {
	return w.registry.AddListener(kind, listener)
}

// Listeners returns the number of listeners attached to the window.
func (w *Window) Listeners() int {
	return w.registry.Active()
}

// Resize changes the viewport size and fires a resize event.
func (w *Window) Resize(width, height float64) {
	w.mu.Lock()
	w.viewport.Width = width
	w.viewport.Height = height
	w.mu.Unlock()
	w.registry.Dispatch(ports.EventResize, w.clock())
}

// ScrollTo sets the document scroll offsets and fires a scroll event.
// Negative offsets are clamped to zero.
func (w *Window) ScrollTo(x, y float64) {
	w.mu.Lock()
	w.viewport.ScrollX = clampScroll(x)
	w.viewport.ScrollY = clampScroll(y)
	w.mu.Unlock()
	w.registry.Dispatch(ports.EventScroll, w.clock())
}

// ScrollBy moves the document scroll offsets by a delta.
func (w *Window) ScrollBy(dx, dy float64) {
	vp := w.Viewport()
	w.ScrollTo(vp.ScrollX+dx, vp.ScrollY+dy)
}

func (w *Window) scroll() (float64, float64) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.viewport.ScrollX, w.viewport.ScrollY
}

func clampScroll(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

var _ ports.Window = (*Window)(nil)
