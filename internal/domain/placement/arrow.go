package placement

import (
	"fmt"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

const (
	edgeFar      = "100%"
	centerOrigin = "center center"
)

// Rotation returns the arrow rotation in degrees for a resolved side. An
// unrotated arrow points down, which is what a Top placement needs.
func Rotation(side geometry.Side) int {
	switch side {
	case geometry.SideRight:
		return 90
	case geometry.SideBottom:
		return 180
	case geometry.SideLeft:
		return -90
	default:
		return 0
	}
}

// PlaceArrow positions a width x height arrow on the floating element's edge
// facing the anchor. ArrowData already holds the arrow's leading edge, so no
// further half-width correction is applied. Missing coordinates fall back to
// 50%.
//
// Left/Right arrows are rotated about their centre; the translate moves the
// rotated box so its base stays flush with the floating element's edge.
func PlaceArrow(resolved geometry.Placement, data ArrowData, width, height float64) ArrowStyles {
	rotate := fmt.Sprintf("rotate(%ddeg)", Rotation(resolved.Side))

	switch resolved.Side {
	case geometry.SideTop:
		return ArrowStyles{
			Transform:       rotate,
			Left:            geometry.PxOr(data.X, geometry.Percent50),
			Top:             edgeFar,
			TransformOrigin: centerOrigin,
		}
	case geometry.SideBottom:
		return ArrowStyles{
			Transform:       rotate,
			Left:            geometry.PxOr(data.X, geometry.Percent50),
			Top:             geometry.Px(-height),
			TransformOrigin: centerOrigin,
		}
	case geometry.SideRight:
		return ArrowStyles{
			Transform:       recenter(width, height) + " " + rotate,
			Left:            geometry.Px(-height),
			Top:             geometry.PxOr(data.Y, geometry.Percent50),
			TransformOrigin: centerOrigin,
		}
	default:
		return ArrowStyles{
			Transform:       recenter(width, height) + " " + rotate,
			Left:            edgeFar,
			Top:             geometry.PxOr(data.Y, geometry.Percent50),
			TransformOrigin: centerOrigin,
		}
	}
}

func recenter(width, height float64) string {
	return fmt.Sprintf("translate(%s, %s)", geometry.Px(height/2-width/2), geometry.Px(width/2-height/2))
}
