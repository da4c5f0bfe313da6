package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Box is a rectangle in terminal cells.
type Box struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

type cell struct {
	r     rune
	role  Role
	style bool
}

// Canvas is a fixed grid of cells that later draws overwrite. Anything
// outside the grid is clipped.
type Canvas struct {
	width, height int
	cells         []cell
}

// NewCanvas allocates a blank canvas. Negative sizes are treated as zero.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{width: width, height: height, cells: make([]cell, width*height)}
	c.Clear()
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
}

// Set paints one cell with role. It returns false when the cell is clipped.
func (c *Canvas) Set(x, y int, r rune, role Role) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	c.cells[y*c.width+x] = cell{r: r, role: role, style: true}
	return true
}

// At returns the rune at (x, y), or a space when out of range.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return ' '
	}
	return c.cells[y*c.width+x].r
}

// DrawText writes text starting at (x, y) without wrapping.
func (c *Canvas) DrawText(x, y int, text string, role Role) {
	for i, r := range []rune(text) {
		c.Set(x+i, y, r, role)
	}
}

// Fill paints every cell of box with r.
func (c *Canvas) Fill(box Box, r rune, role Role) {
	for y := box.Y; y < box.Y+box.Height; y++ {
		for x := box.X; x < box.X+box.Width; x++ {
			c.Set(x, y, r, role)
		}
	}
}

// DrawBox draws a rounded border around box and clears its interior.
// Boxes smaller than 2x2 are filled instead.
func (c *Canvas) DrawBox(box Box, role Role) {
	if box.Width < 2 || box.Height < 2 {
		c.Fill(box, '█', role)
		return
	}
	border := lipgloss.RoundedBorder()
	right, bottom := box.X+box.Width-1, box.Y+box.Height-1

	c.Fill(Box{X: box.X + 1, Y: box.Y + 1, Width: box.Width - 2, Height: box.Height - 2}, ' ', role)
	for x := box.X + 1; x < right; x++ {
		c.Set(x, box.Y, firstRune(border.Top), role)
		c.Set(x, bottom, firstRune(border.Bottom), role)
	}
	for y := box.Y + 1; y < bottom; y++ {
		c.Set(box.X, y, firstRune(border.Left), role)
		c.Set(right, y, firstRune(border.Right), role)
	}
	c.Set(box.X, box.Y, firstRune(border.TopLeft), role)
	c.Set(right, box.Y, firstRune(border.TopRight), role)
	c.Set(box.X, bottom, firstRune(border.BottomLeft), role)
	c.Set(right, bottom, firstRune(border.BottomRight), role)
}

// String renders the canvas without styling.
func (c *Canvas) String() string {
	rows := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		runes := make([]rune, c.width)
		for x := 0; x < c.width; x++ {
			runes[x] = c.cells[y*c.width+x].r
		}
		rows[y] = string(runes)
	}
	return strings.Join(rows, "\n")
}

// Render styles runs of cells that share a role and joins the rows.
func (c *Canvas) Render(ctx RenderContext) string {
	rows := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var b strings.Builder
		start := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && sameStyle(c.cells[y*c.width+x], c.cells[y*c.width+start]) {
				continue
			}
			b.WriteString(c.renderRun(ctx, y, start, x))
			start = x
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func (c *Canvas) renderRun(ctx RenderContext, y, from, to int) string {
	if from >= to {
		return ""
	}
	runes := make([]rune, 0, to-from)
	for x := from; x < to; x++ {
		runes = append(runes, c.cells[y*c.width+x].r)
	}
	head := c.cells[y*c.width+from]
	if !head.style {
		return string(runes)
	}
	return lipgloss.NewStyle().Foreground(ctx.Theme.Color(head.role)).Render(string(runes))
}

func sameStyle(a, b cell) bool {
	return a.style == b.style && a.role == b.role
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
