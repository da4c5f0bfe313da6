// Package popper owns the lifecycle of one floating element: it holds the
// anchor and content registrations, attaches scroll and resize tracking on
// mount, runs the first placement synchronously and throttles later ones
// onto animation frames.
package popper

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/placement"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/refresh"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/tracking"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// Dependencies are the host collaborators a session needs.
type Dependencies struct {
	Window ports.Window
	Frames ports.FrameScheduler
	Logger ports.Logger
	Clock  ports.Clock
}

// Session positions one floating element against one anchor.
type Session struct {
	id     string
	opts   Options
	window ports.Window
	clock  ports.Clock
	logger ports.Logger

	tracker   *tracking.Tracker
	scheduler *refresh.Scheduler

	mu         sync.Mutex
	anchor     ports.Node
	content    ports.Node
	arrow      ports.Measurable
	state      State
	generation uint64
	resolved   geometry.Side
	decision   placement.Decision
	positioned bool
	computing  bool
	applied    geometry.Placement
	result     placement.Result
	arrowStyle placement.ArrowStyles
	callbacks  map[int]func()
	nextCB     int
	stats      Stats
}

// New creates an unmounted session.
func New(opts Options, deps Dependencies) (*Session, error) {
	if deps.Window == nil {
		return nil, geometry.NewDomainError(geometry.ErrCodeValidation, "window is required", nil, nil)
	}
	if deps.Frames == nil {
		return nil, geometry.NewDomainError(geometry.ErrCodeValidation, "frame scheduler is required", nil, nil)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	id := ports.GenerateCorrelationID()
	logger := logging.OrNoOp(deps.Logger).With("component", "popper", "session_id", id)

	s := &Session{
		id:        id,
		opts:      opts,
		window:    deps.Window,
		clock:     clock,
		logger:    logger,
		tracker:   tracking.NewTracker(logger),
		resolved:  opts.Placement.Side,
		callbacks: make(map[int]func()),
	}
	s.scheduler = refresh.NewScheduler(deps.Frames, s.runFrame, refresh.Options{
		MinInterval: opts.MinInterval,
		Logger:      logger,
	})
	return s, nil
}

// ID returns the session identifier used as the log correlation ID.
func (s *Session) ID() string { return s.id }

// Options returns the current options.
func (s *Session) Options() Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// SetOptions replaces the options. A mounted session recomputes on the
// next frame; a changed requested side also resets the resolved side.
// MinInterval is fixed when the session is created.
func (s *Session) SetOptions(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	if opts.Placement.Side != s.opts.Placement.Side {
		s.resolved = opts.Placement.Side
	}
	s.opts = opts
	mounted := s.state != StateUnmounted && s.anchor != nil && s.content != nil
	s.mu.Unlock()
	if mounted {
		s.scheduler.RequestRecompute()
	}
	return nil
}

// RegisterAnchor records the anchor node. Registering a different node
// while mounted tears down the current mount and mounts again.
func (s *Session) RegisterAnchor(ctx context.Context, node ports.Node) error {
	return s.register(ctx, "anchor", node)
}

// RegisterContent records the floating element's node. Once both nodes are
// registered the session attaches its listeners and places the element
// before returning. A refused listener registration unmounts the session and
// is returned as a LISTENER_ERROR.
func (s *Session) RegisterContent(ctx context.Context, node ports.Node) error {
	return s.register(ctx, "content", node)
}

// RegisterArrow supplies an arrow whose measured size replaces the
// configured arrow dimensions.
func (s *Session) RegisterArrow(arrow ports.Measurable) {
	s.mu.Lock()
	s.arrow = arrow
	mounted := s.state != StateUnmounted && s.anchor != nil && s.content != nil
	s.mu.Unlock()
	if mounted {
		s.scheduler.RequestRecompute()
	}
}

// OnPlaced registers a callback fired after every applied placement. The
// returned function removes it.
func (s *Session) OnPlaced(callback func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCB++
	id := s.nextCB
	s.callbacks[id] = callback
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.callbacks, id)
	}
}

// Refresh requests a throttled recomputation on the next frame.
func (s *Session) Refresh() bool {
	s.mu.Lock()
	mounted := s.anchor != nil && s.content != nil && s.state != StateUnmounted
	s.mu.Unlock()
	if !mounted {
		return false
	}
	return s.scheduler.RequestRecompute()
}

// Unmount removes all listeners, cancels any pending frame and clears the
// registrations. Listener removal failures are logged and returned, but the
// session is always left unmounted.
func (s *Session) Unmount(ctx context.Context) error {
	ctx = s.context(ctx)
	s.scheduler.Cancel()
	err := s.tracker.Detach(ctx)

	s.mu.Lock()
	wasMounted := s.state != StateUnmounted
	s.resetLocked()
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn(ctx, "unmount left listeners behind", "error", err)
		return geometry.NewDomainError(geometry.ErrCodeListener, "detach listeners", err, nil)
	}
	if wasMounted {
		s.logger.Debug(ctx, "session unmounted")
	}
	return nil
}

// State returns the lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Positioned reports whether a placement has been applied since mount.
func (s *Session) Positioned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.positioned
}

// Stats returns activity counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	stats := s.stats
	s.mu.Unlock()
	stats.Listeners = s.tracker.Attached()
	stats.PendingFrame = s.scheduler.Pending()
	stats.Scheduler = s.scheduler.Stats()
	return stats
}

// Snapshot returns the current output.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := geometry.NewPlacement(s.resolved, s.opts.Placement.Align)
	if s.positioned {
		resolved = s.applied
	}
	snap := Snapshot{
		ID:             s.id,
		State:          s.state.String(),
		Requested:      s.opts.Placement,
		Resolved:       resolved,
		Decision:       s.decision.String(),
		Positioned:     s.positioned,
		DataAttributes: dataAttributes(resolved),
	}
	if !s.positioned {
		snap.Styles = placement.FloatingStyles{
			Position: placement.PositionAbsolute,
			Top:      geometry.Px(0),
			Left:     geometry.Px(0),
		}.WithTransform(ParkedTransform)
		snap.ArrowStyles = placement.PlaceArrow(resolved, placement.ArrowData{}, s.opts.ArrowWidth, s.opts.ArrowHeight)
		return snap
	}
	snap.Styles = s.result.Styles.WithTransform(PlacedTransform)
	snap.Arrow = s.result.Arrow
	snap.Origin = s.result.Origin
	snap.Position = s.result.Position
	snap.ArrowStyles = s.arrowStyle
	return snap
}

func (s *Session) register(ctx context.Context, slot string, node ports.Node) error {
	ctx = s.context(ctx)
	if node == nil {
		return geometry.NewDomainError(geometry.ErrCodeValidation, slot+" node is required", nil, nil)
	}

	s.mu.Lock()
	current := s.anchor
	if slot == "content" {
		current = s.content
	}
	if current == node {
		s.mu.Unlock()
		return nil
	}
	remount := current != nil && s.state == StatePositioned
	s.mu.Unlock()

	if remount {
		s.logger.Debug(ctx, "remounting", "slot", slot, "node", node.Name())
		s.scheduler.Cancel()
		if err := s.tracker.Detach(ctx); err != nil {
			s.logger.Warn(ctx, "remount left listeners behind", "error", err)
		}
		s.mu.Lock()
		s.positioned = false
		s.resolved = s.opts.Placement.Side
		s.decision = placement.DecisionKeep
		s.generation++
		s.mu.Unlock()
	}

	s.mu.Lock()
	if slot == "content" {
		s.content = node
	} else {
		s.anchor = node
	}
	ready := s.anchor != nil && s.content != nil
	s.state = StateMounting
	anchor, content := s.anchor, s.content
	s.mu.Unlock()

	if !ready {
		s.logger.Debug(ctx, "waiting for registration", "registered", slot, "node", node.Name())
		return nil
	}
	return s.mount(ctx, anchor, content)
}

func (s *Session) mount(ctx context.Context, anchor, content ports.Node) error {
	if err := s.tracker.Attach(ctx, s.window, anchor, content, s.onEvent); err != nil {
		s.logger.Error(ctx, "mount failed", "anchor", anchor.Name(), "content", content.Name(), "error", err)
		s.mu.Lock()
		s.resetLocked()
		s.mu.Unlock()
		return err
	}

	now := s.clock()
	if s.update(ctx, now) {
		s.scheduler.MarkUpdated(now)
	}
	s.logger.Info(ctx, "session mounted",
		"anchor", anchor.Name(),
		"content", content.Name(),
		"listeners", s.tracker.Attached(),
	)
	return nil
}

func (s *Session) onEvent(event ports.Event) {
	s.mu.Lock()
	// Dispatch may still deliver to a listener removed by an earlier one.
	if s.state == StateUnmounted || s.anchor == nil || s.content == nil {
		s.mu.Unlock()
		return
	}
	s.stats.Events++
	s.mu.Unlock()
	s.scheduler.RequestRecompute()
}

func (s *Session) runFrame(now time.Time) bool {
	return s.update(s.context(context.Background()), now)
}

// update re-measures every rect and applies one placement. It reports
// whether a placement was applied. Calls made while an update (including its
// callbacks) is in progress are dropped.
func (s *Session) update(ctx context.Context, now time.Time) bool {
	s.mu.Lock()
	if s.computing || s.anchor == nil || s.content == nil || s.state == StateUnmounted {
		s.mu.Unlock()
		return false
	}
	s.computing = true
	gen := s.generation
	anchor, content, arrow := s.anchor, s.content, s.arrow
	current := s.resolved
	opts := s.opts
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.computing = false
		s.mu.Unlock()
	}()

	arrowWidth, arrowHeight := opts.ArrowWidth, opts.ArrowHeight
	if arrow != nil {
		if r := arrow.BoundingRect(); !r.IsEmpty() {
			arrowWidth, arrowHeight = r.Width, r.Height
		}
	}

	anchorRect := anchor.BoundingRect()
	floatingRect := content.BoundingRect()
	viewport := s.window.Viewport()

	resolution := placement.ResolveSide(current, opts.Placement.Side, opts.AvoidCollisions, placement.CollisionInput{
		Anchor:           anchorRect,
		Floating:         floatingRect,
		Viewport:         viewport,
		SideOffset:       opts.SideOffset,
		ArrowHeight:      arrowHeight,
		CollisionPadding: opts.CollisionPadding,
	})
	resolved := geometry.NewPlacement(resolution.Side, opts.Placement.Align)

	in := placement.Input{
		Scroll:       geometry.Point{X: viewport.ScrollX, Y: viewport.ScrollY},
		Anchor:       anchorRect,
		Floating:     floatingRect,
		Placement:    resolved,
		ArrowWidth:   arrowWidth,
		ArrowHeight:  arrowHeight,
		ArrowPadding: opts.ArrowPadding,
		SideOffset:   opts.SideOffset,
		AlignOffset:  opts.AlignOffset,
	}
	if parent := tracking.OffsetParent(content); parent != nil {
		rect := parent.BoundingRect()
		in.ParentOffset = &rect
		if scrollable, ok := parent.(ports.Scrollable); ok {
			in.ParentScroll = scrollable.Scroll()
		}
	}
	result := placement.ComputeStyles(in)
	arrowStyle := placement.PlaceArrow(resolved, result.Arrow, arrowWidth, arrowHeight)

	s.mu.Lock()
	if gen != s.generation || s.state == StateUnmounted {
		s.mu.Unlock()
		return false
	}
	first := !s.positioned
	s.applied = resolved
	s.result = result
	s.arrowStyle = arrowStyle
	s.resolved = resolution.Side
	s.decision = resolution.Decision
	s.positioned = true
	s.state = StatePositioned
	s.stats.Computations++
	if resolution.Changed(current) {
		s.stats.Flips++
	}
	callbacks := make([]func(), 0, len(s.callbacks))
	for id := 1; id <= s.nextCB; id++ {
		if cb, ok := s.callbacks[id]; ok {
			callbacks = append(callbacks, cb)
		}
	}
	s.mu.Unlock()

	if resolution.Changed(current) {
		s.logger.Info(ctx, "side changed",
			"from", current.String(),
			"to", resolution.Side.String(),
			"decision", resolution.Decision.String(),
		)
	}
	s.logger.Debug(ctx, "placement applied",
		"first", first,
		"placement", resolved.String(),
		"top", result.Styles.Top,
		"left", result.Styles.Left,
	)

	for _, cb := range callbacks {
		cb()
	}
	return true
}

func (s *Session) resetLocked() {
	s.anchor = nil
	s.content = nil
	s.arrow = nil
	s.state = StateUnmounted
	s.generation++
	s.positioned = false
	s.resolved = s.opts.Placement.Side
	s.decision = placement.DecisionKeep
	s.applied = geometry.Placement{}
	s.result = placement.Result{}
	s.arrowStyle = placement.ArrowStyles{}
}

func (s *Session) context(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if ports.GetCorrelationID(ctx) != "" {
		return ctx
	}
	return ports.WithCorrelationID(ctx, s.id)
}
