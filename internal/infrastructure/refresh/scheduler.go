// Package refresh throttles placement recomputation onto animation frames.
package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// DefaultMinInterval is the minimum time between two applied updates.
const DefaultMinInterval = 15 * time.Millisecond

// RunFunc performs one recomputation at the frame timestamp. It reports
// whether an update was applied; skipped runs (for example while a rect is
// missing) do not advance the throttle clock.
type RunFunc func(now time.Time) bool

// Stats counts scheduler activity.
type Stats struct {
	Requests  int
	Coalesced int
	Frames    int
	Skipped   int
	Runs      int
}

// Scheduler coalesces recompute requests into at most one pending animation
// frame and gates frames by a minimum interval since the last update.
//
// The lock is never held while run executes, so run may call
// RequestRecompute; the request lands on a later frame.
type Scheduler struct {
	frames      ports.FrameScheduler
	run         RunFunc
	minInterval time.Duration
	logger      ports.Logger

	mu         sync.Mutex
	pending    bool
	frameID    ports.FrameID
	lastUpdate time.Time
	hasUpdate  bool
	stats      Stats
}

// Options configures a Scheduler.
type Options struct {
	MinInterval time.Duration
	Logger      ports.Logger
}

// NewScheduler creates a scheduler that calls run from frame callbacks.
func NewScheduler(frames ports.FrameScheduler, run RunFunc, opts Options) *Scheduler {
	interval := opts.MinInterval
	if interval < 0 {
		interval = 0
	}
	return &Scheduler{
		frames:      frames,
		run:         run,
		minInterval: interval,
		logger:      logging.OrNoOp(opts.Logger).With("component", "scheduler"),
	}
}

// RequestRecompute asks for a recomputation on the next frame. Requests made
// while a frame is already pending are coalesced into it. It reports whether
// a new frame was requested.
func (s *Scheduler) RequestRecompute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Requests++
	if s.pending {
		s.stats.Coalesced++
		return false
	}
	s.arm()
	return true
}

// MarkUpdated records an update applied outside the frame loop, such as the
// synchronous first placement.
func (s *Scheduler) MarkUpdated(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUpdate = now
	s.hasUpdate = true
}

// LastUpdate returns the timestamp of the last applied update.
func (s *Scheduler) LastUpdate() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUpdate, s.hasUpdate
}

// Pending reports whether a frame is outstanding.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Stats returns a copy of the activity counters.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Cancel drops any pending frame and forgets the last update time. The
// scheduler can be used again afterwards.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		s.frames.CancelFrame(s.frameID)
		s.logger.Debug(context.Background(), "pending frame cancelled", "frame_id", uint64(s.frameID))
	}
	s.pending = false
	s.frameID = 0
	s.hasUpdate = false
	s.lastUpdate = time.Time{}
}

// arm requests a frame. Callers hold s.mu.
func (s *Scheduler) arm() {
	s.pending = true
	s.frameID = s.frames.RequestFrame(s.onFrame)
}

func (s *Scheduler) onFrame(now time.Time) {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.frameID = 0
	s.stats.Frames++

	if s.hasUpdate && now.Sub(s.lastUpdate) <= s.minInterval {
		// Too soon after the last update. Re-arm so the final position
		// after a burst of events is not lost.
		s.stats.Skipped++
		s.arm()
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if !s.run(now) {
		return
	}

	s.mu.Lock()
	s.lastUpdate = now
	s.hasUpdate = true
	s.stats.Runs++
	s.mu.Unlock()
}
