package frames

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// TickerFrames flushes a frame queue from a background goroutine at a fixed
// interval. Callbacks run on that goroutine.
type TickerFrames struct {
	*ManualFrames

	interval time.Duration
	clock    ports.Clock

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTickerFrames creates a ticker-driven scheduler. A non-positive interval
// selects DefaultInterval.
func NewTickerFrames(interval time.Duration, clock ports.Clock) *TickerFrames {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clock == nil {
		clock = time.Now
	}
	return &TickerFrames{
		ManualFrames: NewManualFrames(),
		interval:     interval,
		clock:        clock,
	}
}

// Start launches the flush loop. Calling Start on a running ticker is a
// no-op. The loop stops when ctx is cancelled or Stop is called.
func (t *TickerFrames) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})
	go t.run(loopCtx, t.done)
}

// Stop halts the flush loop and waits for it to exit. Queued callbacks are
// left in place.
func (t *TickerFrames) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Interval returns the frame period.
func (t *TickerFrames) Interval() time.Duration {
	return t.interval
}

func (t *TickerFrames) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Flush(t.clock())
		}
	}
}
