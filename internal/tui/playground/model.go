// Package playground is an interactive terminal demo: an anchor inside a
// scrollable page and a tooltip that follows it, flipping when it runs out
// of room.
package playground

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floatkit/internal/application/popper"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/frames"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/scene"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
)

const (
	// chromeRows are the terminal rows taken by the status and help lines.
	chromeRows = 2

	pageName    = "page"
	anchorName  = "anchor"
	tooltipName = "tooltip"

	anchorWidth   = 12
	anchorHeight  = 3
	tooltipWidth  = 26
	tooltipHeight = 4
	// pageRows is the scrollable height of the page.
	pageRows = 200
)

// Config configures a playground.
type Config struct {
	Width, Height int
	Options       popper.Options
	Logger        ports.Logger
	Clock         ports.Clock
	Theme         components.Theme
	FrameInterval time.Duration
}

// Model is the bubbletea model for the playground.
type Model struct {
	session *popper.Session
	scene   *scene.Scene
	frames  *frames.ManualFrames
	page    *scene.Element
	anchor  *scene.Element
	tooltip *scene.Element

	logger   ports.Logger
	keys     KeyMap
	help     help.Model
	theme    components.Theme
	interval time.Duration

	width, height int
	placements    *int
	err           error
	quitting      bool
}

// New builds the scene and mounts the session. The tooltip is placed
// before New returns.
func New(cfg Config) (Model, error) {
	if cfg.Width <= 0 {
		cfg.Width = 80
	}
	if cfg.Height <= chromeRows {
		cfg.Height = 24
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = frames.DefaultInterval
	}
	if cfg.Theme.Name == "" {
		cfg.Theme = components.DefaultTheme()
	}
	logger := logging.OrNoOp(cfg.Logger).With("component", "playground")

	viewW, viewH := float64(cfg.Width), float64(cfg.Height-chromeRows)
	sc := scene.New(geometry.Viewport{Width: viewW, Height: viewH}, cfg.Clock, logger)

	page, err := sc.Add(scene.ElementSpec{
		Name:        pageName,
		Rect:        geometry.NewRect(0, 0, viewW, viewH),
		Overflow:    ports.OverflowAuto,
		Positioning: ports.PositionStatic,
	})
	if err != nil {
		return Model{}, err
	}
	anchor, err := sc.Add(scene.ElementSpec{
		Name:   anchorName,
		Parent: pageName,
		Rect:   geometry.NewRect((viewW-anchorWidth)/2, (viewH-anchorHeight)/2, anchorWidth, anchorHeight),
	})
	if err != nil {
		return Model{}, err
	}
	tooltip, err := sc.Add(scene.ElementSpec{
		Name: tooltipName,
		Rect: geometry.NewRect(0, 0, tooltipWidth, tooltipHeight),
	})
	if err != nil {
		return Model{}, err
	}

	queue := frames.NewManualFrames()
	session, err := popper.New(cfg.Options, popper.Dependencies{
		Window: sc.Window(),
		Frames: queue,
		Logger: logger,
		Clock:  cfg.Clock,
	})
	if err != nil {
		return Model{}, err
	}

	placements := new(int)
	m := Model{
		session:    session,
		scene:      sc,
		frames:     queue,
		page:       page,
		anchor:     anchor,
		tooltip:    tooltip,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      cfg.Theme,
		interval:   cfg.FrameInterval,
		width:      cfg.Width,
		height:     cfg.Height,
		placements: placements,
	}

	// Keep the tooltip element where the last placement put it.
	session.OnPlaced(func() {
		*placements++
		pos := session.Snapshot().Position
		tooltip.SetRect(geometry.NewRect(pos.X, pos.Y, tooltipWidth, tooltipHeight))
	})

	ctx := context.Background()
	if err := session.RegisterAnchor(ctx, anchor); err != nil {
		return Model{}, err
	}
	if err := session.RegisterContent(ctx, tooltip); err != nil {
		return Model{}, err
	}
	return m, nil
}

// DefaultOptions are popper options measured in terminal cells: a one-cell
// arrow and one cell of collision padding.
func DefaultOptions() popper.Options {
	opts := popper.DefaultOptions()
	opts.ArrowWidth = 1
	opts.ArrowHeight = 1
	opts.ArrowPadding = 1
	opts.CollisionPadding = 1
	return opts
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.interval)
}

// Session exposes the underlying session.
func (m Model) Session() *popper.Session {
	return m.session
}

// Placements counts applied placements.
func (m Model) Placements() int {
	return *m.placements
}

// Err returns the last error reported by the session.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) scrollY() float64 {
	return m.page.Scroll().Y
}

func (m Model) describe() string {
	opts := m.session.Options()
	collisions := "off"
	if opts.AvoidCollisions {
		collisions = "on"
	}
	return fmt.Sprintf("requested %s, collisions %s", opts.Placement, collisions)
}
