package components

import "github.com/charmbracelet/lipgloss"

// Text is a styled run of text.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

// View renders with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx's theme.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// Content returns the raw text.
func (t *Text) Content() string {
	return t.content
}

// SetContent replaces the text.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the raw style.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers adds theme-aware modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// MutedText renders secondary text.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(RoleMuted))
}

// TitleText renders a bold heading.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Bold(), Foreground(RoleText))
}
