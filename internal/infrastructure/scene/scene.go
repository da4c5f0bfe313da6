package scene

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

var (
	// ErrDuplicateElement is returned when an element name is reused.
	ErrDuplicateElement = errors.New("duplicate element")
	// ErrUnknownElement is returned when a lookup or parent reference fails.
	ErrUnknownElement = errors.New("unknown element")
)

// ElementSpec describes an element to add to a scene.
type ElementSpec struct {
	Name        string
	Parent      string
	Rect        geometry.Rect
	Overflow    ports.Overflow
	Positioning ports.Positioning
}

// Scene owns a window and a set of named elements.
type Scene struct {
	mu       sync.RWMutex
	window   *Window
	logger   ports.Logger
	elements map[string]*Element
}

// New creates an empty scene.
func New(viewport geometry.Viewport, clock ports.Clock, logger ports.Logger) *Scene {
	return &Scene{
		window:   NewWindow(viewport, clock, logger),
		logger:   logger,
		elements: make(map[string]*Element),
	}
}

// Window returns the scene's root viewport.
func (s *Scene) Window() *Window {
	return s.window
}

// Add creates an element from spec.
func (s *Scene) Add(spec ElementSpec) (*Element, error) {
	if spec.Name == "" || spec.Name == WindowName {
		return nil, fmt.Errorf("add element: invalid name %q", spec.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.elements[spec.Name]; exists {
		return nil, fmt.Errorf("add element %q: %w", spec.Name, ErrDuplicateElement)
	}

	var parent *Element
	if spec.Parent != "" {
		p, ok := s.elements[spec.Parent]
		if !ok {
			return nil, fmt.Errorf("add element %q: parent %q: %w", spec.Name, spec.Parent, ErrUnknownElement)
		}
		parent = p
	}

	overflow := spec.Overflow
	if overflow == "" {
		overflow = ports.OverflowVisible
	}
	positioning := spec.Positioning
	if positioning == "" {
		positioning = ports.PositionStatic
	}

	el := &Element{
		name:        spec.Name,
		parent:      parent,
		window:      s.window,
		local:       spec.Rect,
		overflow:    overflow,
		positioning: positioning,
		registry:    events.NewRegistry(spec.Name, s.logger),
	}
	s.elements[spec.Name] = el
	return el, nil
}

// Element looks up an element by name.
func (s *Scene) Element(name string) (*Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	el, ok := s.elements[name]
	if !ok {
		return nil, fmt.Errorf("element %q: %w", name, ErrUnknownElement)
	}
	return el, nil
}

// Names returns element names in sorted order.
func (s *Scene) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.elements))
	for name := range s.elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Listeners returns the total number of listeners registered across the
// window and every element.
func (s *Scene) Listeners() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := s.window.Listeners()
	for _, el := range s.elements {
		total += el.Listeners()
	}
	return total
}

// Scroll scrolls the named target by a delta. The window is addressed by
// WindowName.
func (s *Scene) Scroll(target string, dx, dy float64) error {
	if target == "" || target == WindowName {
		s.window.ScrollBy(dx, dy)
		return nil
	}
	el, err := s.Element(target)
	if err != nil {
		return err
	}
	el.ScrollBy(dx, dy)
	return nil
}
