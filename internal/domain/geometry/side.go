package geometry

import (
	"fmt"
	"strings"
)

// Side is the edge of the anchor the floating element is placed against.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

// String returns the lowercase side name.
func (s Side) String() string {
	if s < SideTop || s > SideLeft {
		return fmt.Sprintf("side(%d)", int(s))
	}
	return sideNames[s]
}

// Opposite maps Top<->Bottom and Left<->Right. It is an involution.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return s
	}
}

// IsVertical reports whether the side sits above or below the anchor, in
// which case the cross axis is horizontal.
func (s Side) IsVertical() bool {
	return s == SideTop || s == SideBottom
}

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool {
	return s >= SideTop && s <= SideLeft
}

// ParseSide converts a name such as "top" into a Side.
func ParseSide(value string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "top":
		return SideTop, nil
	case "right":
		return SideRight, nil
	case "bottom":
		return SideBottom, nil
	case "left":
		return SideLeft, nil
	default:
		return SideTop, newValidationError("unknown side", map[string]interface{}{"value": value})
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, newValidationError("invalid side", map[string]interface{}{"value": int(s)})
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
