package playground

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatkit/internal/application/popper"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
)

// View renders the page, the status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	ctx := components.DefaultContext().WithTheme(m.theme).WithWidth(m.width)
	snap := m.session.Snapshot()

	canvas := m.Canvas(snap)
	status := m.statusBar(snap).ViewWithContext(ctx)
	return lipgloss.JoinVertical(lipgloss.Left, canvas.Render(ctx), status, m.help.View(m.keys))
}

// Canvas paints the anchor and the tooltip as they currently sit in the
// viewport.
func (m Model) Canvas(snap popper.Snapshot) *components.Canvas {
	canvas := components.NewCanvas(m.width, max(m.height-chromeRows, 0))

	anchor := toBox(m.anchor.BoundingRect())
	canvas.DrawBox(anchor, components.RoleAnchor)
	canvas.DrawText(anchor.X+2, anchor.Y+1, "anchor", components.RoleAnchor)

	if !snap.Positioned {
		return canvas
	}
	panel := components.FloatingPanel{
		Box: toBox(geometry.NewRect(snap.Position.X, snap.Position.Y, tooltipWidth, tooltipHeight)),
		Lines: []string{
			fmt.Sprintf(" %s (%s)", snap.Resolved, snap.Decision),
			fmt.Sprintf(" top %s left %s", snap.Styles.Top, snap.Styles.Left),
		},
		Side:  snap.Resolved.Side,
		Arrow: arrowOffset(snap),
	}
	panel.Draw(canvas)
	return canvas
}

func (m Model) statusBar(snap popper.Snapshot) *components.StatusBar {
	side := components.AccentBadge(snap.Resolved.Side.String())
	if snap.Resolved.Side != snap.Requested.Side {
		side = components.WarningBadge(snap.Resolved.Side.String())
	}
	stats := m.session.Stats()
	bar := components.NewStatusBar(
		side,
		components.NewText(m.describe()),
		components.MutedText(fmt.Sprintf("scroll %d", int(m.scrollY()))),
		components.MutedText(fmt.Sprintf("runs %d flips %d", stats.Computations, stats.Flips)),
	)
	if m.err != nil {
		bar.Add(components.WarningBadge(m.err.Error()))
	}
	return bar
}

func arrowOffset(snap popper.Snapshot) *int {
	v := snap.Arrow.X
	if !snap.Resolved.Side.IsVertical() {
		v = snap.Arrow.Y
	}
	if v == nil {
		return nil
	}
	offset := int(math.Round(*v))
	return &offset
}

func toBox(r geometry.Rect) components.Box {
	return components.Box{
		X:      int(math.Round(r.X)),
		Y:      int(math.Round(r.Y)),
		Width:  int(math.Round(r.Width)),
		Height: int(math.Round(r.Height)),
	}
}
