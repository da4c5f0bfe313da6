package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	clock := func() time.Time { return time.Unix(100, 0) }
	return New(geometry.Viewport{Width: 800, Height: 600}, clock, nil)
}

func TestBoundingRectAccountsForAncestorsAndScroll(t *testing.T) {
	s := newTestScene(t)
	container, err := s.Add(ElementSpec{
		Name:     "container",
		Rect:     geometry.NewRect(100, 50, 300, 200),
		Overflow: ports.OverflowAuto,
	})
	require.NoError(t, err)
	anchor, err := s.Add(ElementSpec{Name: "anchor", Parent: "container", Rect: geometry.NewRect(20, 30, 40, 10)})
	require.NoError(t, err)

	assert.Equal(t, geometry.NewRect(120, 80, 40, 10), anchor.BoundingRect())

	container.ScrollBy(0, 25)
	assert.Equal(t, geometry.NewRect(120, 55, 40, 10), anchor.BoundingRect())

	s.Window().ScrollTo(10, 5)
	assert.Equal(t, geometry.NewRect(110, 50, 40, 10), anchor.BoundingRect())
	assert.Equal(t, geometry.NewRect(90, 45, 300, 200), container.BoundingRect())
}

func TestFixedElementsIgnoreDocumentScroll(t *testing.T) {
	s := newTestScene(t)
	_, err := s.Add(ElementSpec{Name: "bar", Rect: geometry.NewRect(0, 0, 800, 40), Positioning: ports.PositionFixed})
	require.NoError(t, err)
	button, err := s.Add(ElementSpec{Name: "button", Parent: "bar", Rect: geometry.NewRect(10, 5, 60, 30)})
	require.NoError(t, err)

	s.Window().ScrollTo(0, 300)
	assert.Equal(t, geometry.NewRect(10, 5, 60, 30), button.BoundingRect())
}

func TestScrollClampsAtZero(t *testing.T) {
	s := newTestScene(t)
	s.Window().ScrollBy(-10, -10)
	vp := s.Window().Viewport()
	assert.Zero(t, vp.ScrollX)
	assert.Zero(t, vp.ScrollY)
}

func TestEventsFireOnScrollAndResize(t *testing.T) {
	s := newTestScene(t)
	container, err := s.Add(ElementSpec{Name: "container", Overflow: ports.OverflowScroll})
	require.NoError(t, err)

	var got []ports.Event
	record := func(e ports.Event) { got = append(got, e) }
	_, err = s.Window().AddListener(ports.EventResize, record)
	require.NoError(t, err)
	_, err = container.AddListener(ports.EventScroll, record)
	require.NoError(t, err)

	s.Window().Resize(1024, 768)
	require.NoError(t, s.Scroll("container", 0, 10))
	container.MoveBy(5, 5)

	require.Len(t, got, 2)
	assert.Equal(t, ports.Event{Kind: ports.EventResize, Target: WindowName, At: time.Unix(100, 0)}, got[0])
	assert.Equal(t, "container", got[1].Target)
	assert.Equal(t, ports.EventScroll, got[1].Kind)
	assert.Equal(t, 1024.0, s.Window().Viewport().Width)
	assert.Equal(t, 2, s.Listeners())
}

func TestAddValidatesNamesAndParents(t *testing.T) {
	s := newTestScene(t)
	_, err := s.Add(ElementSpec{Name: "a"})
	require.NoError(t, err)

	_, err = s.Add(ElementSpec{Name: "a"})
	require.ErrorIs(t, err, ErrDuplicateElement)

	_, err = s.Add(ElementSpec{Name: "b", Parent: "missing"})
	require.ErrorIs(t, err, ErrUnknownElement)

	_, err = s.Add(ElementSpec{Name: WindowName})
	require.Error(t, err)

	_, err = s.Element("nope")
	require.ErrorIs(t, err, ErrUnknownElement)
	require.ErrorIs(t, s.Scroll("nope", 1, 1), ErrUnknownElement)

	assert.Equal(t, []string{"a"}, s.Names())
}

func TestDefaultsAndParent(t *testing.T) {
	s := newTestScene(t)
	root, err := s.Add(ElementSpec{Name: "root"})
	require.NoError(t, err)
	child, err := s.Add(ElementSpec{Name: "child", Parent: "root"})
	require.NoError(t, err)

	assert.Nil(t, root.Parent())
	assert.Equal(t, "root", child.Parent().Name())
	assert.Equal(t, ports.OverflowVisible, child.Overflow())
	assert.Equal(t, ports.PositionStatic, child.Positioning())
}

func TestRemovedElementRefusesListeners(t *testing.T) {
	s := newTestScene(t)
	el, err := s.Add(ElementSpec{Name: "anchor"})
	require.NoError(t, err)

	el.Remove()
	_, err = el.AddListener(ports.EventScroll, func(ports.Event) {})
	require.ErrorIs(t, err, events.ErrClosed)
	assert.True(t, el.Removed())
}

func TestSetSizeFiresResizeOnElement(t *testing.T) {
	s := newTestScene(t)
	el, err := s.Add(ElementSpec{Name: "panel", Rect: geometry.NewRect(1, 2, 3, 4)})
	require.NoError(t, err)
	fired := 0
	_, err = el.AddListener(ports.EventResize, func(ports.Event) { fired++ })
	require.NoError(t, err)

	el.SetSize(30, 40)
	assert.Equal(t, 1, fired)
	assert.Equal(t, geometry.NewRect(1, 2, 30, 40), el.LocalRect())
}
