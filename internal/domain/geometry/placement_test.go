package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlacement(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  Placement
	}{
		{input: "top", want: Placement{Side: SideTop, Align: AlignCenter}},
		{input: "bottom-start", want: Placement{Side: SideBottom, Align: AlignStart}},
		{input: "left-end", want: Placement{Side: SideLeft, Align: AlignEnd}},
		{input: "right-center", want: Placement{Side: SideRight, Align: AlignCenter}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePlacement(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePlacementRejectsUnknownParts(t *testing.T) {
	t.Parallel()

	_, err := ParsePlacement("above")
	require.Error(t, err)

	_, err = ParsePlacement("top-middle")
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeValidation))
}

func TestPlacementString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "top", NewPlacement(SideTop, AlignCenter).String())
	assert.Equal(t, "left-start", NewPlacement(SideLeft, AlignStart).String())
	assert.Equal(t, "bottom-end", NewPlacement(SideBottom, AlignEnd).String())
}

func TestPx(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12px", Px(12))
	assert.Equal(t, "2.5px", Px(2.5))
	assert.Equal(t, "-53px", Px(-53))
	assert.Equal(t, "0px", Px(0))
	assert.Equal(t, "50%", PxOr(nil, Percent50))
	assert.Equal(t, "7px", PxOr(Float(7), Percent50))
}

func TestRectEdges(t *testing.T) {
	t.Parallel()

	r := NewRect(10, 20, 30, 40)
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.False(t, r.IsEmpty())
	assert.True(t, Rect{}.IsEmpty())
	assert.Equal(t, NewRect(15, 15, 30, 40), r.Translate(5, -5))
}
