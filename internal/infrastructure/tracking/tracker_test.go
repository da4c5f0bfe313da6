package tracking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/scene"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
	pkgerrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

type fixture struct {
	scene   *scene.Scene
	outer   *scene.Element
	inner   *scene.Element
	anchor  *scene.Element
	content *scene.Element
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	s := scene.New(geometry.Viewport{Width: 800, Height: 600}, nil, nil)
	add := func(spec scene.ElementSpec) *scene.Element {
		el, err := s.Add(spec)
		require.NoError(t, err)
		return el
	}
	f := fixture{scene: s}
	f.outer = add(scene.ElementSpec{Name: "outer", Overflow: ports.OverflowAuto, Positioning: ports.PositionRelative})
	f.inner = add(scene.ElementSpec{Name: "inner", Parent: "outer", Overflow: ports.OverflowScroll})
	add(scene.ElementSpec{Name: "clip", Parent: "inner", Overflow: ports.OverflowHidden})
	f.anchor = add(scene.ElementSpec{Name: "anchor", Parent: "clip"})
	f.content = add(scene.ElementSpec{Name: "content", Parent: "inner"})
	return f
}

func names(nodes []ports.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name())
	}
	return out
}

func TestScrollParentsNearestFirst(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, []string{"inner", "outer"}, names(ScrollParents(f.anchor)))
	assert.Empty(t, ScrollParents(f.outer))
	assert.Nil(t, ScrollParents(nil))
}

func TestOffsetParent(t *testing.T) {
	f := newFixture(t)
	parent := OffsetParent(f.content)
	require.NotNil(t, parent)
	assert.Equal(t, "outer", parent.Name())
	assert.Nil(t, OffsetParent(f.outer))
	assert.Nil(t, OffsetParent(nil))
}

func TestTargetsAreDeduplicated(t *testing.T) {
	f := newFixture(t)
	_, err := f.scene.Add(scene.ElementSpec{Name: "side", Overflow: ports.OverflowAuto})
	require.NoError(t, err)
	other, err := f.scene.Add(scene.ElementSpec{Name: "other-anchor", Parent: "side"})
	require.NoError(t, err)

	assert.Equal(t, []string{"window", "inner", "outer"}, Targets(f.scene.Window(), f.anchor, f.content))
	assert.Equal(t, []string{"window", "inner", "outer", "side"}, Targets(f.scene.Window(), other, f.content))
}

// paneNode is a host node whose name need not be unique.
type paneNode struct {
	name      string
	parent    ports.Node
	overflow  ports.Overflow
	listeners int
}

func (n *paneNode) BoundingRect() geometry.Rect { return geometry.Rect{} }
func (n *paneNode) Name() string                { return n.name }
func (n *paneNode) Overflow() ports.Overflow    { return n.overflow }
func (n *paneNode) Positioning() ports.Positioning {
	return ports.PositionStatic
}

func (n *paneNode) Parent() ports.Node { return n.parent }

func (n *paneNode) AddListener(ports.EventKind, ports.Listener) (ports.Subscription, error) {
	n.listeners++
	return stubSubscription{}, nil
}

func TestTargetsKeepDistinctNodesSharingAName(t *testing.T) {
	outer := &paneNode{name: "pane", overflow: ports.OverflowAuto}
	inner := &paneNode{name: "pane", parent: outer, overflow: ports.OverflowScroll}
	content := &paneNode{name: "content", parent: inner}
	anchor := &paneNode{name: "anchor", parent: inner}

	assert.Equal(t, []string{"window", "pane", "pane"}, Targets(stubWindow{}, anchor, content))

	tracker := NewTracker(nil)
	require.NoError(t, tracker.Attach(context.Background(), stubWindow{}, anchor, content, func(ports.Event) {}))
	assert.Equal(t, 6, tracker.Attached())
	assert.Equal(t, 2, outer.listeners)
	assert.Equal(t, 2, inner.listeners)
	require.NoError(t, tracker.Detach(context.Background()))
}

func TestAttachAndDetachRestoreBaseline(t *testing.T) {
	f := newFixture(t)
	baseline := f.scene.Listeners()
	tracker := NewTracker(nil)

	calls := 0
	require.NoError(t, tracker.Attach(context.Background(), f.scene.Window(), f.anchor, f.content, func(ports.Event) { calls++ }))
	assert.Equal(t, 6, tracker.Attached())
	assert.Equal(t, baseline+6, f.scene.Listeners())

	f.scene.Window().ScrollBy(0, 10)
	f.inner.ScrollBy(0, 5)
	f.outer.SetSize(10, 10)
	assert.Equal(t, 3, calls)

	require.NoError(t, tracker.Detach(context.Background()))
	assert.Zero(t, tracker.Attached())
	assert.Equal(t, baseline, f.scene.Listeners())

	f.scene.Window().ScrollBy(0, 10)
	assert.Equal(t, 3, calls)
}

func TestAttachTwiceIsInvalidState(t *testing.T) {
	f := newFixture(t)
	tracker := NewTracker(nil)
	listener := func(ports.Event) {}
	require.NoError(t, tracker.Attach(context.Background(), f.scene.Window(), f.anchor, f.content, listener))

	err := tracker.Attach(context.Background(), f.scene.Window(), f.anchor, f.content, listener)
	assert.True(t, geometry.HasCode(err, geometry.ErrCodeState))
}

func TestAttachRequiresListener(t *testing.T) {
	f := newFixture(t)
	err := NewTracker(nil).Attach(context.Background(), f.scene.Window(), f.anchor, f.content, nil)
	assert.True(t, geometry.HasCode(err, geometry.ErrCodeValidation))
}

func TestAttachFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	f.outer.Remove()
	baseline := f.scene.Listeners()
	tracker := NewTracker(nil)

	err := tracker.Attach(context.Background(), f.scene.Window(), f.anchor, f.content, func(ports.Event) {})
	require.Error(t, err)
	assert.True(t, geometry.HasCode(err, geometry.ErrCodeListener))

	var listenerErr *pkgerrors.ListenerError
	require.ErrorAs(t, err, &listenerErr)
	assert.Equal(t, "outer", listenerErr.Target)
	assert.Equal(t, "scroll", listenerErr.Event)

	assert.Zero(t, tracker.Attached())
	assert.Equal(t, baseline, f.scene.Listeners())
}

type stubSubscription struct{ err error }

func (s stubSubscription) Unsubscribe() error { return s.err }

type stubWindow struct{ unsubscribeErr error }

func (w stubWindow) AddListener(ports.EventKind, ports.Listener) (ports.Subscription, error) {
	return stubSubscription{err: w.unsubscribeErr}, nil
}

func (stubWindow) Viewport() geometry.Viewport { return geometry.Viewport{Width: 10, Height: 10} }

func TestDetachFailureIsReportedButResets(t *testing.T) {
	f := newFixture(t)
	removal := errors.New("host busy")
	tracker := NewTracker(nil)
	require.NoError(t, tracker.Attach(context.Background(), stubWindow{unsubscribeErr: removal}, f.anchor, f.content, func(ports.Event) {}))

	err := tracker.Detach(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, removal)
	assert.Zero(t, tracker.Attached())
	// inner and outer registrations were still removed.
	assert.Zero(t, f.scene.Listeners())

	require.NoError(t, tracker.Detach(context.Background()))
}
