package placement

import "github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"

// PositionAbsolute is the only positioning scheme produced by ComputeStyles.
const PositionAbsolute = "absolute"

// FloatingStyles is the CSS-like output applied to the floating element.
// Transform is left unset by ComputeStyles; the session decides between the
// parked and the visible transform.
type FloatingStyles struct {
	Position  string  `json:"position" yaml:"position"`
	Top       string  `json:"top" yaml:"top"`
	Left      string  `json:"left" yaml:"left"`
	Transform *string `json:"transform,omitempty" yaml:"transform,omitempty"`
}

// WithTransform returns a copy with the transform set.
func (s FloatingStyles) WithTransform(transform string) FloatingStyles {
	s.Transform = &transform
	return s
}

// ArrowData locates the arrow along the floating element's edge. X is set
// for Top/Bottom placements and Y for Left/Right; the other stays nil.
type ArrowData struct {
	X            *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y            *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	CenterOffset float64  `json:"center_offset" yaml:"center_offset"`
}

// TransformOrigin is the pivot used by enter/exit animations, expressed as
// CSS length-or-percentage strings.
type TransformOrigin struct {
	X string `json:"x" yaml:"x"`
	Y string `json:"y" yaml:"y"`
}

// String renders the origin as a CSS transform-origin value.
func (o TransformOrigin) String() string {
	return o.X + " " + o.Y
}

// ArrowStyles is the output of PlaceArrow.
type ArrowStyles struct {
	Transform       string `json:"transform" yaml:"transform"`
	Left            string `json:"left" yaml:"left"`
	Top             string `json:"top" yaml:"top"`
	TransformOrigin string `json:"transform_origin" yaml:"transform_origin"`
}

// Result bundles everything ComputeStyles produces. Offset is the
// anchor-relative displacement and Position the numeric top-left that
// Styles encodes.
type Result struct {
	Styles   FloatingStyles  `json:"styles" yaml:"styles"`
	Arrow    ArrowData       `json:"arrow" yaml:"arrow"`
	Origin   TransformOrigin `json:"transform_origin" yaml:"transform_origin"`
	Offset   geometry.Point  `json:"offset" yaml:"offset"`
	Position geometry.Point  `json:"position" yaml:"position"`
}
