package components

import "github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"

// ArrowGlyph returns the glyph pointing from the floating element toward an
// anchor on the given side.
func ArrowGlyph(side geometry.Side) rune {
	switch side {
	case geometry.SideTop:
		return '▼'
	case geometry.SideRight:
		return '◀'
	case geometry.SideLeft:
		return '▶'
	default:
		return '▲'
	}
}

// FloatingPanel is a bordered box with an optional one-cell arrow on the
// edge facing its anchor.
type FloatingPanel struct {
	Box   Box
	Lines []string
	Side  geometry.Side
	// Arrow is the arrow's offset along the facing edge, in cells from the
	// panel's left (Top/Bottom) or top (Left/Right). Nil hides the arrow.
	Arrow *int
}

// Draw paints the panel onto c.
func (p FloatingPanel) Draw(c *Canvas) {
	c.DrawBox(p.Box, RoleFloating)
	for i, line := range p.Lines {
		if i >= p.Box.Height-2 {
			break
		}
		text := []rune(line)
		if limit := p.Box.Width - 2; limit >= 0 && len(text) > limit {
			text = text[:limit]
		}
		c.DrawText(p.Box.X+1, p.Box.Y+1+i, string(text), RoleText)
	}
	if x, y, ok := p.ArrowCell(); ok {
		c.Set(x, y, ArrowGlyph(p.Side), RoleArrow)
	}
}

// ArrowCell returns the cell holding the arrow, just outside the facing edge.
func (p FloatingPanel) ArrowCell() (int, int, bool) {
	if p.Arrow == nil {
		return 0, 0, false
	}
	offset := *p.Arrow
	switch p.Side {
	case geometry.SideTop:
		return p.Box.X + offset, p.Box.Y + p.Box.Height, true
	case geometry.SideRight:
		return p.Box.X - 1, p.Box.Y + offset, true
	case geometry.SideLeft:
		return p.Box.X + p.Box.Width, p.Box.Y + offset, true
	default:
		return p.Box.X + offset, p.Box.Y - 1, true
	}
}
