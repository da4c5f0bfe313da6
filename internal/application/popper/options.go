package popper

import (
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/refresh"
)

const (
	// DefaultArrowWidth and DefaultArrowHeight size the arrow when no arrow
	// node is registered.
	DefaultArrowWidth  = 10
	DefaultArrowHeight = 5
)

// Options are read on every recomputation.
type Options struct {
	Placement        geometry.Placement
	SideOffset       float64
	AlignOffset      float64
	AvoidCollisions  bool
	CollisionPadding float64
	ArrowPadding     float64
	ArrowWidth       float64
	ArrowHeight      float64
	MinInterval      time.Duration
}

// DefaultOptions places below the anchor, centred, with collision
// avoidance on.
func DefaultOptions() Options {
	return Options{
		Placement:       geometry.NewPlacement(geometry.SideBottom, geometry.AlignCenter),
		AvoidCollisions: true,
		ArrowWidth:      DefaultArrowWidth,
		ArrowHeight:     DefaultArrowHeight,
		MinInterval:     refresh.DefaultMinInterval,
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if !o.Placement.Side.Valid() {
		return geometry.NewDomainError(geometry.ErrCodeValidation, "invalid side", nil, map[string]interface{}{
			"side": int(o.Placement.Side),
		})
	}
	checks := []struct {
		field string
		value float64
	}{
		{"collision_padding", o.CollisionPadding},
		{"arrow_padding", o.ArrowPadding},
		{"arrow.width", o.ArrowWidth},
		{"arrow.height", o.ArrowHeight},
	}
	for _, c := range checks {
		if c.value < 0 {
			return geometry.NewDomainError(geometry.ErrCodeValidation, "must not be negative", nil, map[string]interface{}{
				"field": c.field,
				"value": c.value,
			})
		}
	}
	if o.MinInterval < 0 {
		return geometry.NewDomainError(geometry.ErrCodeValidation, "must not be negative", nil, map[string]interface{}{
			"field": "refresh.min_interval",
			"value": o.MinInterval.String(),
		})
	}
	return nil
}
