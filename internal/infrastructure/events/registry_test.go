package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

func TestRegistryDispatchesInRegistrationOrder(t *testing.T) {
	registry := NewRegistry("window", logging.NewNoOpLogger())
	var order []string

	_, err := registry.AddListener(ports.EventScroll, func(e ports.Event) { order = append(order, "a:"+e.Target) })
	require.NoError(t, err)
	_, err = registry.AddListener(ports.EventScroll, func(ports.Event) { order = append(order, "b") })
	require.NoError(t, err)
	_, err = registry.AddListener(ports.EventResize, func(ports.Event) { order = append(order, "resize") })
	require.NoError(t, err)

	delivered := registry.Dispatch(ports.EventScroll, time.Unix(0, 0))
	assert.Equal(t, 2, delivered)
	assert.Equal(t, []string{"a:window", "b"}, order)
	assert.Equal(t, 3, registry.Active())
	assert.Equal(t, 1, registry.Count(ports.EventResize))
}

func TestUnsubscribeRemovesOnlyThatListener(t *testing.T) {
	registry := NewRegistry("container", nil)
	calls := 0
	first, err := registry.AddListener(ports.EventScroll, func(ports.Event) { calls++ })
	require.NoError(t, err)
	_, err = registry.AddListener(ports.EventScroll, func(ports.Event) { calls += 10 })
	require.NoError(t, err)

	require.NoError(t, first.Unsubscribe())
	registry.Dispatch(ports.EventScroll, time.Time{})

	assert.Equal(t, 10, calls)
	assert.Equal(t, 1, registry.Active())
}

func TestDoubleUnsubscribeFails(t *testing.T) {
	registry := NewRegistry("window", nil)
	sub, err := registry.AddListener(ports.EventResize, func(ports.Event) {})
	require.NoError(t, err)

	require.NoError(t, sub.Unsubscribe())
	err = sub.Unsubscribe()
	require.ErrorIs(t, err, ErrNotSubscribed)
}

func TestClosedRegistryRefusesListeners(t *testing.T) {
	registry := NewRegistry("anchor", nil)
	registry.Close()

	sub, err := registry.AddListener(ports.EventScroll, func(ports.Event) {})
	assert.Nil(t, sub)
	require.ErrorIs(t, err, ErrClosed)
	assert.True(t, registry.Closed())
}

func TestNilListenerRejected(t *testing.T) {
	registry := NewRegistry("window", nil)
	_, err := registry.AddListener(ports.EventScroll, nil)
	require.Error(t, err)
	assert.Zero(t, registry.Active())
}

func TestListenerMayUnsubscribeDuringDispatch(t *testing.T) {
	registry := NewRegistry("window", nil)
	var sub ports.Subscription
	calls := 0
	sub, err := registry.AddListener(ports.EventScroll, func(ports.Event) {
		calls++
		_ = sub.Unsubscribe()
	})
	require.NoError(t, err)

	registry.Dispatch(ports.EventScroll, time.Time{})
	registry.Dispatch(ports.EventScroll, time.Time{})

	assert.Equal(t, 1, calls)
	assert.Zero(t, registry.Active())
}
