package components

import "github.com/charmbracelet/lipgloss"

// Renderable is anything that renders to a string.
type Renderable interface {
	View() string
}

// ContextualRenderable renders with an explicit theme and width.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// RenderContext carries the theme and available width into rendering.
type RenderContext struct {
	Theme Theme
	Width int
}

// DefaultContext uses the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a copy limited to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// BaseComponent holds a raw style plus the StyleFuncs applied on top of it.
// Embed it to get theme-aware styling.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle applies every StyleFunc in order.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// SetStyle replaces the raw style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the StyleFuncs.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = append([]StyleFunc(nil), appliers...)
}

// AddAppliers appends StyleFuncs without mutating slices shared with copies.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}
