package geometry

import "strconv"

// Percent50 is the fallback length used when an arrow coordinate is unknown.
const Percent50 = "50%"

// Px formats a length in pixels, e.g. 12 -> "12px", 2.5 -> "2.5px".
func Px(v float64) string {
	if v == 0 {
		// avoid "-0px"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// PxOr formats v in pixels, or returns fallback when v is nil.
func PxOr(v *float64, fallback string) string {
	if v == nil {
		return fallback
	}
	return Px(*v)
}

// Float returns a pointer to v. Handy for optional coordinates.
func Float(v float64) *float64 {
	return &v
}
