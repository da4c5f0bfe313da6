package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

// Options is the YAML form of a session's placement options. Unset fields
// keep the engine defaults.
type Options struct {
	Side             string        `yaml:"side,omitempty" validate:"omitempty,side"`
	Align            string        `yaml:"align,omitempty" validate:"omitempty,align"`
	SideOffset       float64       `yaml:"side_offset,omitempty"`
	AlignOffset      float64       `yaml:"align_offset,omitempty"`
	AvoidCollisions  *bool         `yaml:"avoid_collisions,omitempty"`
	CollisionPadding float64       `yaml:"collision_padding,omitempty" validate:"gte=0"`
	ArrowPadding     float64       `yaml:"arrow_padding,omitempty" validate:"gte=0"`
	Arrow            ArrowOptions  `yaml:"arrow,omitempty"`
	Refresh          RefreshOption `yaml:"refresh,omitempty"`
}

// ArrowOptions sizes the default arrow.
type ArrowOptions struct {
	Width  *float64 `yaml:"width,omitempty" validate:"omitempty,gte=0"`
	Height *float64 `yaml:"height,omitempty" validate:"omitempty,gte=0"`
}

// RefreshOption tunes the refresh throttle.
type RefreshOption struct {
	MinInterval *time.Duration `yaml:"min_interval,omitempty" validate:"omitempty,gte=0"`
}

// Scenario describes a layout and a timeline of host events to replay
// against a placement session.
type Scenario struct {
	Name     string            `yaml:"name" validate:"required,min=1,max=100"`
	Viewport geometry.Viewport `yaml:"viewport"`
	Elements []Element         `yaml:"elements" validate:"required,min=2,dive"`
	Anchor   string            `yaml:"anchor" validate:"required,element_name"`
	Floating string            `yaml:"floating" validate:"required,element_name"`
	Arrow    string            `yaml:"arrow,omitempty" validate:"omitempty,element_name"`
	Options  Options           `yaml:"options,omitempty"`
	Duration time.Duration     `yaml:"duration,omitempty" validate:"gte=0"`
	Events   []Event           `yaml:"events,omitempty" validate:"omitempty,dive"`
}

// Element is a node of the scenario's layout tree.
type Element struct {
	Name     string        `yaml:"name" validate:"required,element_name"`
	Parent   string        `yaml:"parent,omitempty" validate:"omitempty,element_name"`
	Rect     geometry.Rect `yaml:"rect"`
	Overflow string        `yaml:"overflow,omitempty" validate:"omitempty,oneof=visible hidden clip scroll auto"`
	Position string        `yaml:"position,omitempty" validate:"omitempty,oneof=static relative absolute fixed sticky"`
}

// Event types.
const (
	EventScroll  = "scroll"
	EventResize  = "resize"
	EventMove    = "move"
	EventRefresh = "refresh"
	EventUnmount = "unmount"
)

// Event is one timeline entry. At is measured from mount.
type Event struct {
	At   time.Duration `yaml:"at" validate:"gte=0"`
	Type string        `yaml:"type" validate:"required,oneof=scroll resize move refresh unmount"`

	Scroll *DeltaEvent  `yaml:"-"`
	Move   *DeltaEvent  `yaml:"-"`
	Resize *ResizeEvent `yaml:"-"`
}

// DeltaEvent scrolls or moves a target by a delta. An empty target for a
// scroll event means the window.
type DeltaEvent struct {
	Target string  `yaml:"target,omitempty"`
	DX     float64 `yaml:"dx,omitempty"`
	DY     float64 `yaml:"dy,omitempty"`
}

// ResizeEvent resizes the window, or an element when Target is set.
type ResizeEvent struct {
	Target string  `yaml:"target,omitempty"`
	Width  float64 `yaml:"width" validate:"gte=0"`
	Height float64 `yaml:"height" validate:"gte=0"`
}

// UnmarshalYAML decodes the type-specific payload next to the common fields.
func (e *Event) UnmarshalYAML(value *yaml.Node) error {
	type baseEvent struct {
		At   time.Duration `yaml:"at"`
		Type string        `yaml:"type"`
	}

	var base baseEvent
	if err := value.Decode(&base); err != nil {
		return err
	}

	e.At = base.At
	e.Type = base.Type
	e.Scroll = nil
	e.Move = nil
	e.Resize = nil

	switch base.Type {
	case EventScroll:
		var delta DeltaEvent
		if err := value.Decode(&delta); err != nil {
			return err
		}
		e.Scroll = &delta
	case EventMove:
		var delta DeltaEvent
		if err := value.Decode(&delta); err != nil {
			return err
		}
		e.Move = &delta
	case EventResize:
		var resize ResizeEvent
		if err := value.Decode(&resize); err != nil {
			return err
		}
		e.Resize = &resize
	case EventRefresh, EventUnmount:
	default:
		return fmt.Errorf("line %d: unknown event type %q", value.Line, base.Type)
	}
	return nil
}
