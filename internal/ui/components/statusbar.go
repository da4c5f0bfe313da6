package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar lays renderables out on one line separated by a muted bar.
type StatusBar struct {
	BaseComponent
	items []Renderable
}

// NewStatusBar creates a status bar.
func NewStatusBar(items ...Renderable) *StatusBar {
	return &StatusBar{BaseComponent: NewBaseComponent(), items: items}
}

// Add appends an item.
func (s *StatusBar) Add(item Renderable) *StatusBar {
	s.items = append(s.items, item)
	return s
}

// View renders with the default context.
func (s *StatusBar) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext joins items horizontally and truncates to ctx.Width.
func (s *StatusBar) ViewWithContext(ctx RenderContext) string {
	sep := MutedText("│").ViewWithContext(ctx)
	parts := make([]string, 0, len(s.items)*2)
	for i, item := range s.items {
		if i > 0 {
			parts = append(parts, sep)
		}
		if c, ok := item.(ContextualRenderable); ok {
			parts = append(parts, c.ViewWithContext(ctx))
		} else {
			parts = append(parts, item.View())
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	style := s.ComputeStyle(ctx.Theme)
	if ctx.Width > 0 {
		style = style.MaxWidth(ctx.Width)
	}
	return strings.TrimRight(style.Render(line), " ")
}
