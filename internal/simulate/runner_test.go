package simulate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alexisbeaulieu97/floatkit/internal/config"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

const tooltipScenario = `name: tooltip near top
viewport: {width: 800, height: 600}
elements:
  - {name: button, rect: {x: 100, y: 0, width: 40, height: 20}}
  - {name: tooltip, rect: {width: 120, height: 40}}
anchor: button
floating: tooltip
options:
  side: top
  side_offset: 8
  collision_padding: 4
events:
  - {at: 40ms, type: move, target: button, dy: 300}
  - {at: 41ms, type: scroll, dy: 0}
  - {at: 100ms, type: unmount}
  - {at: 120ms, type: scroll, dy: 50}
`

func parse(t *testing.T, doc string) *config.Scenario {
	t.Helper()
	sc, err := config.ParseScenarioBytes("test", []byte(doc))
	require.NoError(t, err)
	return sc
}

func TestReplayFlipsAndFlipsBack(t *testing.T) {
	report, err := NewRunner(Options{}).Run(context.Background(), parse(t, tooltipScenario))
	require.NoError(t, err)

	assert.Equal(t, []string{"bottom", "top"}, report.Sides())
	require.Len(t, report.Placements, 2)
	assert.Equal(t, time.Duration(0), report.Placements[0].At)
	assert.Equal(t, "flip", report.Placements[0].Decision)
	assert.Equal(t, 48*time.Millisecond, report.Placements[1].At)
	assert.Equal(t, "flip_back", report.Placements[1].Decision)
	assert.Equal(t, "247px", report.Placements[1].Top)

	assert.Equal(t, 220*time.Millisecond, report.Duration)
	require.Len(t, report.Events, 4)
	assert.Equal(t, "window", report.Events[1].Target)
	assert.True(t, report.Clean())
	assert.Equal(t, "unmounted", report.Final.State)
}

func TestReplayCoalescesBursts(t *testing.T) {
	doc := `name: burst
viewport: {width: 800, height: 600}
elements:
  - {name: page, rect: {width: 800, height: 600}, overflow: auto}
  - {name: button, parent: page, rect: {x: 100, y: 200, width: 40, height: 20}}
  - {name: tooltip, parent: page, rect: {width: 120, height: 40}}
anchor: button
floating: tooltip
events:
`
	for i := 0; i < 10; i++ {
		doc += "  - {at: " + (time.Duration(20+i) * time.Millisecond).String() + ", type: scroll, target: page, dy: 1}\n"
	}

	report, err := NewRunner(Options{}).Run(context.Background(), parse(t, doc))
	require.NoError(t, err)

	assert.Len(t, report.Placements, 2)
	assert.Equal(t, 2, report.Stats.Computations)
	assert.Equal(t, 10, report.Stats.Events)
	assert.Equal(t, 9, report.Stats.Scheduler.Coalesced)
	assert.Equal(t, "215px", report.Placements[1].Top)
	assert.True(t, report.Clean())
}

func TestReplayWithoutUnmountStillCleansUp(t *testing.T) {
	doc := `name: open
viewport: {width: 800, height: 600}
elements:
  - {name: button, rect: {x: 100, y: 200, width: 40, height: 20}}
  - {name: tooltip, rect: {width: 120, height: 40}}
  - {name: arrow, rect: {width: 16, height: 8}}
anchor: button
floating: tooltip
arrow: arrow
events:
  - {at: 10ms, type: resize, width: 400, height: 300}
`
	report, err := NewRunner(Options{}).Run(context.Background(), parse(t, doc))
	require.NoError(t, err)

	require.NotEmpty(t, report.Placements)
	assert.Equal(t, "positioned", report.Final.State)
	assert.Equal(t, "rotate(180deg)", report.Final.ArrowStyles.Transform)
	assert.Equal(t, "-8px", report.Final.ArrowStyles.Top)
	assert.True(t, report.Clean())
	assert.Zero(t, report.Stats.Listeners)
}

func TestReplayHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(Options{}).Run(ctx, parse(t, tooltipScenario))
	require.Error(t, err)
	assert.True(t, geometry.HasCode(err, geometry.ErrCodeState))
}

func TestRunRequiresScenario(t *testing.T) {
	_, err := NewRunner(Options{}).Run(context.Background(), nil)
	assert.True(t, geometry.HasCode(err, geometry.ErrCodeValidation))
}

func TestRealtimeReplay(t *testing.T) {
	defer goleak.VerifyNone(t)

	doc := `name: realtime
viewport: {width: 800, height: 600}
elements:
  - {name: button, rect: {x: 100, y: 200, width: 40, height: 20}}
  - {name: tooltip, rect: {width: 120, height: 40}}
anchor: button
floating: tooltip
duration: 60ms
events:
  - {at: 5ms, type: scroll, dy: 10}
`
	report, err := NewRunner(Options{Realtime: true, FrameInterval: 2 * time.Millisecond}).Run(context.Background(), parse(t, doc))
	require.NoError(t, err)

	require.NotEmpty(t, report.Placements)
	assert.Equal(t, "bottom", report.Placements[0].Placement)
	assert.True(t, report.Clean())
}
