package geometry

import (
	"fmt"
	"strings"
)

// Alignment positions the floating element along the cross axis. The zero
// value is AlignCenter, which stands for "no alignment requested".
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignStart
	AlignEnd
)

// String returns the lowercase alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	default:
		return fmt.Sprintf("align(%d)", int(a))
	}
}

// ParseAlignment converts "start", "center" or "end" into an Alignment. The
// empty string is center.
func ParseAlignment(value string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "center":
		return AlignCenter, nil
	case "start":
		return AlignStart, nil
	case "end":
		return AlignEnd, nil
	default:
		return AlignCenter, newValidationError("unknown alignment", map[string]interface{}{"value": value})
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	parsed, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Placement pairs a side with an optional alignment.
type Placement struct {
	Side  Side      `json:"side" yaml:"side"`
	Align Alignment `json:"align" yaml:"align"`
}

// NewPlacement builds a placement from its parts.
func NewPlacement(side Side, align Alignment) Placement {
	return Placement{Side: side, Align: align}
}

// String renders "side" for centered placements and "side-align" otherwise.
func (p Placement) String() string {
	if p.Align == AlignCenter {
		return p.Side.String()
	}
	return p.Side.String() + "-" + p.Align.String()
}

// ParsePlacement accepts "bottom", "bottom-start", "left-end" and so on.
func ParsePlacement(value string) (Placement, error) {
	sidePart, alignPart, _ := strings.Cut(strings.TrimSpace(value), "-")
	side, err := ParseSide(sidePart)
	if err != nil {
		return Placement{}, err
	}
	align, err := ParseAlignment(alignPart)
	if err != nil {
		return Placement{}, err
	}
	return Placement{Side: side, Align: align}, nil
}
