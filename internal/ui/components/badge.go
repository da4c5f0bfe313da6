package components

// BadgeVariant picks the badge colour.
type BadgeVariant int

const (
	BadgeDefault BadgeVariant = iota
	BadgeAccent
	BadgeWarning
)

// Badge is a short inline label such as the resolved side.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a default badge.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), text: text}
}

// AccentBadge highlights a value.
func AccentBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeAccent)
}

// WarningBadge flags a value that needs attention.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeWarning)
}

// WithVariant sets the variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// Text returns the label.
func (b *Badge) Text() string {
	return b.text
}

// View renders with the default context.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := Padded(1)(b.ComputeStyle(ctx.Theme), ctx.Theme)
	switch b.variant {
	case BadgeAccent:
		style = Bold()(Foreground(RoleAccent)(style, ctx.Theme), ctx.Theme)
	case BadgeWarning:
		style = Bold()(Foreground(RoleWarning)(style, ctx.Theme), ctx.Theme)
	default:
		style = Foreground(RoleText)(style, ctx.Theme)
	}
	return style.Render(b.text)
}
