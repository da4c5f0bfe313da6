// Package geometry holds the value types shared by the placement engine:
// rectangles, sides, alignments and placements. Everything here is pure and
// allocation free; values are replaced, never mutated in place.
package geometry

import "fmt"

// Rect is a viewport-relative bounding box. X and Y locate the top-left
// corner. A fresh Rect is produced by every measurement.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewRect creates a Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// IsEmpty reports whether the rectangle has no area. Elements that have not
// been laid out yet measure as empty.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns a copy moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// WithSize returns a copy with the given dimensions and the same origin.
func (r Rect) WithSize(width, height float64) Rect {
	return Rect{X: r.X, Y: r.Y, Width: width, Height: height}
}

// String renders the rect for logs.
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// Point is an (x, y) pair in the same coordinate space as Rect.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Size is a width/height pair without a position.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Viewport describes the visible area and the document scroll position.
type Viewport struct {
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	ScrollX float64 `json:"scroll_x" yaml:"scroll_x"`
	ScrollY float64 `json:"scroll_y" yaml:"scroll_y"`
}
