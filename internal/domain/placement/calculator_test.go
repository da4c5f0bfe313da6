package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

func baseInput(side geometry.Side, align geometry.Alignment) Input {
	return Input{
		Anchor:      geometry.NewRect(100, 50, 40, 20),
		Floating:    geometry.NewRect(0, 0, 120, 40),
		Placement:   geometry.NewPlacement(side, align),
		ArrowWidth:  10,
		ArrowHeight: 5,
		SideOffset:  8,
	}
}

func TestComputeStylesPerSide(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		side       geometry.Side
		wantOffset geometry.Point
		wantArrowX *float64
		wantArrowY *float64
		wantOrigin TransformOrigin
	}{
		{
			name:       "top centres horizontally above the anchor",
			side:       geometry.SideTop,
			wantOffset: geometry.Point{X: -40, Y: -53},
			wantArrowX: geometry.Float(55),
			wantOrigin: TransformOrigin{X: "55px", Y: "40px"},
		},
		{
			name:       "bottom mirrors top below the anchor",
			side:       geometry.SideBottom,
			wantOffset: geometry.Point{X: -40, Y: 33},
			wantArrowX: geometry.Float(55),
			wantOrigin: TransformOrigin{X: "55px", Y: "0px"},
		},
		{
			name:       "right centres vertically beside the anchor",
			side:       geometry.SideRight,
			wantOffset: geometry.Point{X: 53, Y: -10},
			wantArrowY: geometry.Float(15),
			wantOrigin: TransformOrigin{X: "0px", Y: "15px"},
		},
		{
			name:       "left mirrors right",
			side:       geometry.SideLeft,
			wantOffset: geometry.Point{X: -133, Y: -10},
			wantArrowY: geometry.Float(15),
			wantOrigin: TransformOrigin{X: "120px", Y: "15px"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res := ComputeStyles(baseInput(tc.side, geometry.AlignCenter))
			assert.Equal(t, tc.wantOffset, res.Offset)
			assert.Equal(t, tc.wantArrowX, res.Arrow.X)
			assert.Equal(t, tc.wantArrowY, res.Arrow.Y)
			assert.Equal(t, tc.wantOrigin, res.Origin)
			assert.Equal(t, PositionAbsolute, res.Styles.Position)
			assert.Nil(t, res.Styles.Transform)
		})
	}
}

func TestComputeStylesAbsolutePosition(t *testing.T) {
	t.Parallel()

	res := ComputeStyles(baseInput(geometry.SideTop, geometry.AlignCenter))
	assert.Equal(t, geometry.Point{X: 60, Y: -3}, res.Position)
	assert.Equal(t, "60px", res.Styles.Left)
	assert.Equal(t, "-3px", res.Styles.Top)
}

func TestComputeStylesUsesDocumentScrollWithoutParent(t *testing.T) {
	t.Parallel()

	in := baseInput(geometry.SideBottom, geometry.AlignCenter)
	in.Scroll = geometry.Point{X: 0, Y: 100}
	res := ComputeStyles(in)
	assert.Equal(t, geometry.Point{X: 60, Y: 183}, res.Position)
}

func TestComputeStylesRelativeToParentOffset(t *testing.T) {
	t.Parallel()

	in := baseInput(geometry.SideBottom, geometry.AlignCenter)
	parent := geometry.NewRect(50, 20, 400, 400)
	in.ParentOffset = &parent
	in.Scroll = geometry.Point{X: 999, Y: 999}

	res := ComputeStyles(in)
	assert.Equal(t, geometry.Point{X: 10, Y: 63}, res.Position)
	assert.Equal(t, "10px", res.Styles.Left)
	assert.Equal(t, "63px", res.Styles.Top)
}

func TestComputeStylesAddsParentScroll(t *testing.T) {
	t.Parallel()

	in := baseInput(geometry.SideBottom, geometry.AlignCenter)
	parent := geometry.NewRect(50, 20, 400, 400)
	in.ParentOffset = &parent
	unscrolled := ComputeStyles(in).Position

	// Scrolling the container moves the anchor up by the same amount.
	in.Anchor = in.Anchor.Translate(-15, -100)
	in.ParentScroll = geometry.Point{X: 15, Y: 100}
	res := ComputeStyles(in)
	assert.Equal(t, unscrolled, res.Position)
	assert.Equal(t, "63px", res.Styles.Top)
}

func TestComputeStylesAlignStartUsesOffsetExactly(t *testing.T) {
	t.Parallel()

	widths := []struct{ anchor, floating float64 }{{40, 120}, {300, 10}, {0, 0}, {17.5, 33.25}}
	for _, w := range widths {
		in := baseInput(geometry.SideBottom, geometry.AlignStart)
		in.Anchor.Width = w.anchor
		in.Floating.Width = w.floating
		in.AlignOffset = 10

		res := ComputeStyles(in)
		assert.Equal(t, 10.0, res.Offset.X, "anchor=%v floating=%v", w.anchor, w.floating)
	}
}

func TestComputeStylesCenterAlignmentHasNoOffset(t *testing.T) {
	t.Parallel()

	in := baseInput(geometry.SideTop, geometry.AlignCenter)
	in.AlignOffset = 25

	res := ComputeStyles(in)
	assert.Equal(t, in.Anchor.Width/2-in.Floating.Width/2, res.Offset.X)
}

func TestComputeStylesEndAlignment(t *testing.T) {
	t.Parallel()

	vertical := baseInput(geometry.SideTop, geometry.AlignEnd)
	vertical.AlignOffset = 5
	assert.Equal(t, -85.0, ComputeStyles(vertical).Offset.X)

	horizontal := baseInput(geometry.SideLeft, geometry.AlignEnd)
	horizontal.AlignOffset = 5
	assert.Equal(t, -25.0, ComputeStyles(horizontal).Offset.Y)

	start := baseInput(geometry.SideRight, geometry.AlignStart)
	start.AlignOffset = 3
	assert.Equal(t, 3.0, ComputeStyles(start).Offset.Y)
}

func TestComputeStylesIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, side := range []geometry.Side{geometry.SideTop, geometry.SideRight, geometry.SideBottom, geometry.SideLeft} {
		for _, align := range []geometry.Alignment{geometry.AlignStart, geometry.AlignCenter, geometry.AlignEnd} {
			in := baseInput(side, align)
			in.AlignOffset = 4
			first := ComputeStyles(in)
			second := ComputeStyles(in)
			require.Equal(t, first, second, "%s-%s", side, align)
		}
	}
}

func TestComputeStylesZeroSizedRects(t *testing.T) {
	t.Parallel()

	res := ComputeStyles(Input{Placement: geometry.NewPlacement(geometry.SideRight, geometry.AlignCenter)})
	assert.Equal(t, "0px", res.Styles.Left)
	assert.Equal(t, "0px", res.Styles.Top)
	require.NotNil(t, res.Arrow.Y)
	assert.Equal(t, 0.0, *res.Arrow.Y)
	assert.Equal(t, TransformOrigin{X: "0px", Y: "0px"}, res.Origin)
}

// The Left/Right arrow centres with the arrow width, not its height.
func TestComputeStylesHorizontalArrowCentresWithWidth(t *testing.T) {
	t.Parallel()

	in := baseInput(geometry.SideRight, geometry.AlignCenter)
	in.ArrowWidth = 12
	in.ArrowHeight = 4

	res := ComputeStyles(in)
	require.NotNil(t, res.Arrow.Y)
	assert.Equal(t, in.Floating.Height/2-in.ArrowWidth/2, *res.Arrow.Y)
}

func TestComputeStylesArrowPadding(t *testing.T) {
	t.Parallel()

	in := baseInput(geometry.SideTop, geometry.AlignCenter)
	in.Floating.Width = 12
	in.ArrowPadding = 4

	res := ComputeStyles(in)
	require.NotNil(t, res.Arrow.X)
	assert.Equal(t, 4.0, *res.Arrow.X)
	assert.Equal(t, -3.0, res.Arrow.CenterOffset)

	roomy := baseInput(geometry.SideTop, geometry.AlignCenter)
	roomy.ArrowPadding = 4
	res = ComputeStyles(roomy)
	assert.Equal(t, 55.0, *res.Arrow.X)
	assert.Equal(t, 0.0, res.Arrow.CenterOffset)
}
