package placement

import "github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"

// CollisionInput holds what the overflow predicate needs. Anchor is the
// viewport-relative anchor rect; only the floating element's size is used.
type CollisionInput struct {
	Anchor           geometry.Rect
	Floating         geometry.Rect
	Viewport         geometry.Viewport
	SideOffset       float64
	ArrowHeight      float64
	CollisionPadding float64
}

// WouldOverflow reports whether placing the floating element on side would
// push it past the viewport edge. A viewport with no area (detached tree,
// headless render) never reports overflow.
func WouldOverflow(side geometry.Side, in CollisionInput) bool {
	if in.Viewport.Width <= 0 || in.Viewport.Height <= 0 {
		return false
	}

	gap := in.SideOffset + in.ArrowHeight + in.CollisionPadding
	r := in.Anchor

	switch side {
	case geometry.SideTop:
		return r.Y < in.Floating.Height+gap
	case geometry.SideBottom:
		return r.Y+r.Height+in.Floating.Height+gap > in.Viewport.Height
	case geometry.SideLeft:
		return r.X < in.Floating.Width+gap
	case geometry.SideRight:
		return r.X+r.Width+in.Floating.Width+gap > in.Viewport.Width
	default:
		return false
	}
}

// Decision explains why ResolveSide returned the side it did.
type Decision int

const (
	// DecisionKeep leaves the resolved side as it was.
	DecisionKeep Decision = iota
	// DecisionFlip moves away from an overflowing side to its opposite.
	DecisionFlip
	// DecisionFlipBack returns to the requested side once it fits again.
	DecisionFlipBack
	// DecisionFallback returns to the requested side because neither the
	// current side nor its opposite fits.
	DecisionFallback
	// DecisionDisabled is reported when collision avoidance is off.
	DecisionDisabled
)

// String names the decision for logs.
func (d Decision) String() string {
	switch d {
	case DecisionFlip:
		return "flip"
	case DecisionFlipBack:
		return "flip_back"
	case DecisionFallback:
		return "fallback"
	case DecisionDisabled:
		return "disabled"
	default:
		return "keep"
	}
}

// Resolution is the output of ResolveSide.
type Resolution struct {
	Side     geometry.Side
	Decision Decision
}

// Changed reports whether the side differs from current.
func (r Resolution) Changed(current geometry.Side) bool {
	return r.Side != current
}

// ResolveSide picks the next resolved side from the current one.
//
//   - avoidCollisions off: always the requested side.
//   - current overflows: flip to its opposite, unless the opposite overflows
//     too, in which case settle on the requested side.
//   - current differs from requested and requested fits: flip back.
//   - otherwise keep current.
//
// Running it again on its own output with the same geometry returns the
// same side.
func ResolveSide(current, requested geometry.Side, avoidCollisions bool, in CollisionInput) Resolution {
	if !avoidCollisions {
		return Resolution{Side: requested, Decision: DecisionDisabled}
	}

	if WouldOverflow(current, in) {
		opposite := current.Opposite()
		if !WouldOverflow(opposite, in) {
			return Resolution{Side: opposite, Decision: DecisionFlip}
		}
		if current == requested {
			return Resolution{Side: current, Decision: DecisionKeep}
		}
		return Resolution{Side: requested, Decision: DecisionFallback}
	}

	if current != requested && !WouldOverflow(requested, in) {
		return Resolution{Side: requested, Decision: DecisionFlipBack}
	}

	return Resolution{Side: current, Decision: DecisionKeep}
}
