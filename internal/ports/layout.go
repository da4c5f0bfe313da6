package ports

import "github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"

// Measurable is anything that can report its current viewport-relative
// bounding rect. Callers re-measure on every use instead of caching.
type Measurable interface {
	BoundingRect() geometry.Rect
}

// Overflow mirrors the CSS overflow property of a node.
type Overflow string

const (
	OverflowVisible Overflow = "visible"
	OverflowHidden  Overflow = "hidden"
	OverflowClip    Overflow = "clip"
	OverflowScroll  Overflow = "scroll"
	OverflowAuto    Overflow = "auto"
)

// Scrollable reports whether the overflow mode lets the user scroll.
func (o Overflow) Scrollable() bool {
	return o == OverflowScroll || o == OverflowAuto
}

// Positioning mirrors the CSS position property of a node.
type Positioning string

const (
	PositionStatic   Positioning = "static"
	PositionRelative Positioning = "relative"
	PositionAbsolute Positioning = "absolute"
	PositionFixed    Positioning = "fixed"
	PositionSticky   Positioning = "sticky"
)

// EstablishesContext reports whether the node is a containing block for
// absolutely positioned descendants.
func (p Positioning) EstablishesContext() bool {
	return p != "" && p != PositionStatic
}

// Node is a measurable element in the host's layout tree.
type Node interface {
	Measurable
	EventTarget
	Name() string
	// Parent returns nil at the root of the tree.
	Parent() Node
	Overflow() Overflow
	Positioning() Positioning
}

// Scrollable is implemented by nodes that expose their own scroll offset.
// The offset of a positioned ancestor shifts the local coordinates of its
// absolutely positioned descendants.
type Scrollable interface {
	Scroll() geometry.Point
}

// Window is the root viewport.
type Window interface {
	EventTarget
	Viewport() geometry.Viewport
}
