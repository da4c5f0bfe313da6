package components

import "github.com/charmbracelet/lipgloss"

// Role names a colour slot in a Theme.
type Role int

const (
	RoleText Role = iota
	RoleMuted
	RoleSurface
	RoleBorder
	RoleAnchor
	RoleFloating
	RoleArrow
	RoleAccent
	RoleWarning
)

// Theme is an immutable set of colours keyed by role.
type Theme struct {
	Name   string
	colors map[Role]lipgloss.TerminalColor
}

// NewTheme builds a theme from a role map. Missing roles render with the
// terminal's default colour.
func NewTheme(name string, colors map[Role]lipgloss.TerminalColor) Theme {
	copied := make(map[Role]lipgloss.TerminalColor, len(colors))
	for role, c := range colors {
		copied[role] = c
	}
	return Theme{Name: name, colors: copied}
}

// Color returns the colour for role.
func (t Theme) Color(role Role) lipgloss.TerminalColor {
	if c, ok := t.colors[role]; ok {
		return c
	}
	return lipgloss.NoColor{}
}

// DefaultTheme uses adaptive colours that read on light and dark terminals.
func DefaultTheme() Theme {
	return NewTheme("default", map[Role]lipgloss.TerminalColor{
		RoleText:     lipgloss.AdaptiveColor{Light: "#1e293b", Dark: "#e2e8f0"},
		RoleMuted:    lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"},
		RoleSurface:  lipgloss.AdaptiveColor{Light: "#f1f5f9", Dark: "#0f172a"},
		RoleBorder:   lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#475569"},
		RoleAnchor:   lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"},
		RoleFloating: lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#c4b5fd"},
		RoleArrow:    lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#c4b5fd"},
		RoleAccent:   lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"},
		RoleWarning:  lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"},
	})
}

// MonochromeTheme has no colours at all; output is plain text.
func MonochromeTheme() Theme {
	return NewTheme("monochrome", nil)
}

// StyleFunc applies theme data to a style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Foreground sets the text colour from role.
func Foreground(role Role) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Foreground(t.Color(role))
	}
}

// Background sets the background colour from role.
func Background(role Role) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Background(t.Color(role))
	}
}

// Bold makes text bold.
func Bold() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Bold(true)
	}
}

// Faint dims text.
func Faint() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Faint(true)
	}
}

// Padded adds horizontal padding.
func Padded(cells int) StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Padding(0, cells)
	}
}
