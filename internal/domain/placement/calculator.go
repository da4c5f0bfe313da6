package placement

import "github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"

// Input carries the measurements and options for one placement run.
type Input struct {
	// ParentOffset is the rect of the nearest positioned ancestor of the
	// floating element, or nil when the element is positioned against the
	// document.
	ParentOffset *geometry.Rect
	// ParentScroll is the positioned ancestor's own scroll offset, only used
	// when ParentOffset is set.
	ParentScroll geometry.Point
	// Scroll is the document scroll, only used when ParentOffset is nil.
	Scroll geometry.Point

	Anchor    geometry.Rect
	Floating  geometry.Rect
	Placement geometry.Placement

	ArrowWidth   float64
	ArrowHeight  float64
	ArrowPadding float64
	SideOffset   float64
	AlignOffset  float64
}

// ComputeStyles places the floating element against the anchor. The
// formulas are linear in every dimension, so empty rects produce defined
// (if degenerate) output.
func ComputeStyles(in Input) Result {
	offset := anchorOffset(in)
	arrow := arrowData(in)
	origin := transformOrigin(in.Placement.Side, in.Floating, arrow)

	var base geometry.Point
	if in.ParentOffset != nil {
		base = geometry.Point{
			X: in.Anchor.X - in.ParentOffset.X + in.ParentScroll.X,
			Y: in.Anchor.Y - in.ParentOffset.Y + in.ParentScroll.Y,
		}
	} else {
		base = geometry.Point{
			X: in.Anchor.X + in.Scroll.X,
			Y: in.Anchor.Y + in.Scroll.Y,
		}
	}
	position := geometry.Point{X: base.X + offset.X, Y: base.Y + offset.Y}

	return Result{
		Styles: FloatingStyles{
			Position: PositionAbsolute,
			Top:      geometry.Px(position.Y),
			Left:     geometry.Px(position.X),
		},
		Arrow:    arrow,
		Origin:   origin,
		Offset:   offset,
		Position: position,
	}
}

// anchorOffset returns the floating element's top-left relative to the
// anchor's top-left.
func anchorOffset(in Input) geometry.Point {
	anchor, floating := in.Anchor, in.Floating
	gap := in.SideOffset + in.ArrowHeight

	var left, top float64
	switch in.Placement.Side {
	case geometry.SideTop:
		left = anchor.Width/2 - floating.Width/2
		top = -floating.Height - gap
	case geometry.SideBottom:
		left = anchor.Width/2 - floating.Width/2
		top = anchor.Height + gap
	case geometry.SideRight:
		top = anchor.Height/2 - floating.Height/2
		left = anchor.Width + gap
	case geometry.SideLeft:
		top = anchor.Height/2 - floating.Height/2
		left = -floating.Width - gap
	}

	if in.Placement.Side.IsVertical() {
		switch in.Placement.Align {
		case geometry.AlignStart:
			left = in.AlignOffset
		case geometry.AlignEnd:
			left = anchor.Width - floating.Width - in.AlignOffset
		}
	} else {
		switch in.Placement.Align {
		case geometry.AlignStart:
			top = in.AlignOffset
		case geometry.AlignEnd:
			top = anchor.Height - floating.Height - in.AlignOffset
		}
	}

	return geometry.Point{X: left, Y: top}
}

// arrowData centres the arrow on the floating element's cross axis. Both
// axes centre with ArrowWidth; Left/Right placements do not switch to
// ArrowHeight.
func arrowData(in Input) ArrowData {
	cross := in.Floating.Width
	if !in.Placement.Side.IsVertical() {
		cross = in.Floating.Height
	}

	ideal := cross/2 - in.ArrowWidth/2
	pos := clampArrow(ideal, cross, in.ArrowWidth, in.ArrowPadding)

	data := ArrowData{CenterOffset: ideal - pos}
	if in.Placement.Side.IsVertical() {
		data.X = geometry.Float(pos)
	} else {
		data.Y = geometry.Float(pos)
	}
	return data
}

// clampArrow keeps the arrow at least padding away from either end of the
// edge. When the edge is too short to honour both ends the arrow is pinned
// at the leading padding.
func clampArrow(pos, length, arrowWidth, padding float64) float64 {
	if padding <= 0 {
		return pos
	}
	lo := padding
	hi := length - arrowWidth - padding
	if hi < lo {
		return lo
	}
	if pos < lo {
		return lo
	}
	if pos > hi {
		return hi
	}
	return pos
}

// transformOrigin is the point of the floating element nearest the anchor.
func transformOrigin(side geometry.Side, floating geometry.Rect, arrow ArrowData) TransformOrigin {
	switch side {
	case geometry.SideTop:
		return TransformOrigin{X: geometry.PxOr(arrow.X, geometry.Percent50), Y: geometry.Px(floating.Height)}
	case geometry.SideBottom:
		return TransformOrigin{X: geometry.PxOr(arrow.X, geometry.Percent50), Y: geometry.Px(0)}
	case geometry.SideRight:
		return TransformOrigin{X: geometry.Px(0), Y: geometry.PxOr(arrow.Y, geometry.Percent50)}
	default:
		return TransformOrigin{X: geometry.Px(floating.Width), Y: geometry.PxOr(arrow.Y, geometry.Percent50)}
	}
}
