package playground

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floatkit/internal/application/popper"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

var (
	sideCycle  = []geometry.Side{geometry.SideBottom, geometry.SideRight, geometry.SideTop, geometry.SideLeft}
	alignCycle = []geometry.Alignment{geometry.AlignCenter, geometry.AlignStart, geometry.AlignEnd}
)

// Update handles bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if m.quitting {
			return m, nil
		}
		m.frames.Flush(time.Time(msg))
		return m, frameCmd(m.interval)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		viewW, viewH := float64(msg.Width), float64(max(msg.Height-chromeRows, 0))
		m.page.SetRect(geometry.NewRect(0, 0, viewW, viewH))
		m.scene.Window().Resize(viewW, viewH)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if err := m.session.Unmount(context.Background()); err != nil {
			m.err = err
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.moveAnchor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveAnchor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveAnchor(-2, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveAnchor(2, 0)

	case key.Matches(msg, m.keys.ScrollUp):
		m.page.ScrollBy(0, -1)
	case key.Matches(msg, m.keys.ScrollDown):
		limit := pageRows - m.page.LocalRect().Height
		if m.scrollY() < limit {
			m.page.ScrollBy(0, 1)
		}

	case key.Matches(msg, m.keys.Side):
		opts := m.session.Options()
		opts.Placement.Side = next(sideCycle, opts.Placement.Side)
		m.setOptions(opts)
	case key.Matches(msg, m.keys.Align):
		opts := m.session.Options()
		opts.Placement.Align = next(alignCycle, opts.Placement.Align)
		m.setOptions(opts)
	case key.Matches(msg, m.keys.Collisions):
		opts := m.session.Options()
		opts.AvoidCollisions = !opts.AvoidCollisions
		m.setOptions(opts)
	}
	return m, nil
}

// moveAnchor shifts the anchor inside the page. Moving an element fires no
// scroll or resize event, so the session is refreshed explicitly.
func (m *Model) moveAnchor(dx, dy float64) {
	m.anchor.MoveBy(dx, dy)
	m.session.Refresh()
}

func (m *Model) setOptions(opts popper.Options) {
	if err := m.session.SetOptions(opts); err != nil {
		m.err = err
		m.logger.Warn(context.Background(), "rejected options", "error", err)
	}
}

func next[T comparable](cycle []T, current T) T {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
