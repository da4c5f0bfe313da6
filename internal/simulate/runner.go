// Package simulate replays a scenario timeline against a placement session
// and reports every placement it produced.
package simulate

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/application/popper"
	"github.com/alexisbeaulieu97/floatkit/internal/config"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/frames"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/scene"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// Tail is how long a replay keeps running after its last event when the
// scenario has no explicit duration.
const Tail = 100 * time.Millisecond

// Options configures a replay.
type Options struct {
	// Realtime drives frames from a wall-clock ticker instead of a virtual
	// clock.
	Realtime      bool
	FrameInterval time.Duration
	Logger        ports.Logger
}

// Runner replays scenarios.
type Runner struct {
	opts   Options
	logger ports.Logger
}

// NewRunner creates a Runner.
func NewRunner(opts Options) *Runner {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = frames.DefaultInterval
	}
	return &Runner{opts: opts, logger: logging.OrNoOp(opts.Logger).With("component", "simulate")}
}

type recorder struct {
	mu      sync.Mutex
	session *popper.Session
	start   time.Time
	clock   ports.Clock
	records []Record
}

func (r *recorder) placed() {
	snap := r.session.Snapshot()
	rec := Record{
		At:        r.clock().Sub(r.start),
		Placement: snap.Resolved.String(),
		Decision:  snap.Decision,
		Top:       snap.Styles.Top,
		Left:      snap.Styles.Left,
		Origin:    snap.Origin.String(),
		Arrow:     snap.ArrowStyles.Transform,
	}
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Record(nil), r.records...)
}

// virtualClock is advanced explicitly by the replay loop.
type virtualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *virtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *virtualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Run replays sc and returns the report. Setup failures, including a
// refused listener registration, are returned as errors.
func (r *Runner) Run(ctx context.Context, sc *config.Scenario) (*Report, error) {
	if sc == nil {
		return nil, geometry.NewDomainError(geometry.ErrCodeValidation, "scenario is required", nil, nil)
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	opts, err := sc.Options.Resolve()
	if err != nil {
		return nil, err
	}

	events := append([]config.Event(nil), sc.Events...)
	sort.SliceStable(events, func(i, j int) bool { return events[i].At < events[j].At })
	duration := sc.Duration
	if duration <= 0 {
		duration = Tail
		if n := len(events); n > 0 {
			duration = events[n-1].At + Tail
		}
	}

	if r.opts.Realtime {
		return r.runRealtime(ctx, sc, opts, events, duration)
	}
	return r.runVirtual(ctx, sc, opts, events, duration)
}

func (r *Runner) runVirtual(ctx context.Context, sc *config.Scenario, opts popper.Options, events []config.Event, duration time.Duration) (*Report, error) {
	start := time.Unix(0, 0).UTC()
	clock := &virtualClock{now: start}
	queue := frames.NewManualFrames()

	env, err := r.mount(ctx, sc, opts, queue, clock.Now, start)
	if err != nil {
		return nil, err
	}

	next := 0
	frameCount := 0
	for elapsed := time.Duration(0); elapsed <= duration; elapsed += r.opts.FrameInterval {
		if err := ctx.Err(); err != nil {
			_ = env.session.Unmount(ctx)
			return nil, geometry.NewDomainError(geometry.ErrCodeState, "simulation cancelled", err, nil)
		}
		for next < len(events) && events[next].At <= elapsed {
			clock.Set(start.Add(events[next].At))
			if err := env.handle(ctx, events[next]); err != nil {
				_ = env.session.Unmount(ctx)
				return nil, err
			}
			next++
		}
		clock.Set(start.Add(elapsed))
		if queue.Flush(clock.Now()) > 0 {
			frameCount++
		}
	}

	return env.finish(ctx, sc, duration, frameCount, queue.Pending), nil
}

func (r *Runner) runRealtime(ctx context.Context, sc *config.Scenario, opts popper.Options, events []config.Event, duration time.Duration) (*Report, error) {
	ticker := frames.NewTickerFrames(r.opts.FrameInterval, time.Now)
	start := time.Now()

	env, err := r.mount(ctx, sc, opts, ticker, time.Now, start)
	if err != nil {
		return nil, err
	}
	ticker.Start(ctx)

	abort := func(err error) (*Report, error) {
		ticker.Stop()
		_ = env.session.Unmount(context.Background())
		return nil, err
	}

	for _, ev := range events {
		if err := sleepUntil(ctx, start.Add(ev.At)); err != nil {
			return abort(err)
		}
		if err := env.handle(ctx, ev); err != nil {
			return abort(err)
		}
	}
	if err := sleepUntil(ctx, start.Add(duration)); err != nil {
		return abort(err)
	}

	ticker.Stop()
	return env.finish(ctx, sc, duration, ticker.Fired(), ticker.Pending), nil
}

func sleepUntil(ctx context.Context, deadline time.Time) error {
	wait := time.Until(deadline)
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return geometry.NewDomainError(geometry.ErrCodeState, "simulation cancelled", ctx.Err(), nil)
	case <-timer.C:
		return nil
	}
}

type environment struct {
	runner   *Runner
	scene    *scene.Scene
	session  *popper.Session
	recorder *recorder
	clock    ports.Clock
	start    time.Time
	baseline int
	mounted  bool
	applied  []Applied
	mu       sync.Mutex
}

func (r *Runner) mount(ctx context.Context, sc *config.Scenario, opts popper.Options, fs ports.FrameScheduler, clock ports.Clock, start time.Time) (*environment, error) {
	sceneLogger := r.logger.With("component", "scene")
	s, err := BuildScene(sc, clock, sceneLogger)
	if err != nil {
		return nil, geometry.NewDomainError(geometry.ErrCodeValidation, "build scene", err, map[string]interface{}{"scenario": sc.Name})
	}

	session, err := popper.New(opts, popper.Dependencies{
		Window: s.Window(),
		Frames: fs,
		Logger: r.logger,
		Clock:  clock,
	})
	if err != nil {
		return nil, err
	}

	rec := &recorder{session: session, start: start, clock: clock}
	session.OnPlaced(rec.placed)

	env := &environment{
		runner:   r,
		scene:    s,
		session:  session,
		recorder: rec,
		clock:    clock,
		start:    start,
		baseline: s.Listeners(),
	}

	anchor, err := s.Element(sc.Anchor)
	if err != nil {
		return nil, err
	}
	content, err := s.Element(sc.Floating)
	if err != nil {
		return nil, err
	}
	if sc.Arrow != "" {
		arrow, err := s.Element(sc.Arrow)
		if err != nil {
			return nil, err
		}
		session.RegisterArrow(arrow)
	}
	if err := session.RegisterAnchor(ctx, anchor); err != nil {
		return nil, err
	}
	if err := session.RegisterContent(ctx, content); err != nil {
		return nil, err
	}
	env.mounted = true

	r.logger.Info(ctx, "scenario mounted",
		"scenario", sc.Name,
		"session_id", session.ID(),
		"listeners", s.Listeners()-env.baseline,
	)
	return env, nil
}

func (e *environment) handle(ctx context.Context, ev config.Event) error {
	applied := Applied{At: ev.At, Type: ev.Type}
	switch ev.Type {
	case config.EventUnmount:
		if e.mounted {
			if err := e.session.Unmount(ctx); err != nil {
				e.runner.logger.Warn(ctx, "unmount reported errors", "error", err)
			}
			e.mounted = false
		}
	case config.EventRefresh:
		e.session.Refresh()
	default:
		target, err := apply(e.scene, ev)
		applied.Target = target
		if err != nil {
			return geometry.NewDomainError(geometry.ErrCodeNotFound, "apply event", err, map[string]interface{}{
				"type": ev.Type,
				"at":   ev.At.String(),
			})
		}
	}

	e.mu.Lock()
	e.applied = append(e.applied, applied)
	e.mu.Unlock()
	return nil
}

func (e *environment) finish(ctx context.Context, sc *config.Scenario, duration time.Duration, frameCount int, pending func() int) *Report {
	final := e.session.Snapshot()
	report := &Report{
		Scenario:   sc.Name,
		SessionID:  e.session.ID(),
		Duration:   duration,
		Frames:     frameCount,
		Placements: e.recorder.snapshot(),
		Final:      final,
	}
	if e.mounted {
		if err := e.session.Unmount(ctx); err != nil {
			report.UnmountError = err.Error()
		}
		e.mounted = false
	}
	report.Stats = e.session.Stats()
	report.LeakedListeners = e.scene.Listeners() - e.baseline
	report.PendingFrames = pending()

	e.mu.Lock()
	report.Events = append([]Applied(nil), e.applied...)
	e.mu.Unlock()

	e.runner.logger.Info(ctx, "scenario finished",
		"scenario", sc.Name,
		"placements", len(report.Placements),
		"leaked_listeners", report.LeakedListeners,
		"frames", frameCount,
	)
	return report
}
