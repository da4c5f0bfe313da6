package popper

import (
	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/placement"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/refresh"
)

// ParkedTransform keeps the floating element off-screen until the first
// placement has been computed.
const ParkedTransform = "translate(0, -200%)"

// PlacedTransform is applied once the element has been positioned.
const PlacedTransform = "none"

// State is the lifecycle of a session.
type State int

const (
	StateUnmounted State = iota
	StateMounting
	StatePositioned
)

func (s State) String() string {
	switch s {
	case StateMounting:
		return "mounting"
	case StatePositioned:
		return "positioned"
	default:
		return "unmounted"
	}
}

// Snapshot is everything the rendering side needs from a session.
type Snapshot struct {
	ID             string                    `json:"id" yaml:"id"`
	State          string                    `json:"state" yaml:"state"`
	Requested      geometry.Placement        `json:"requested" yaml:"requested"`
	Resolved       geometry.Placement        `json:"resolved" yaml:"resolved"`
	Decision       string                    `json:"decision" yaml:"decision"`
	Positioned     bool                      `json:"positioned" yaml:"positioned"`
	Styles         placement.FloatingStyles  `json:"styles" yaml:"styles"`
	Arrow          placement.ArrowData       `json:"arrow" yaml:"arrow"`
	ArrowStyles    placement.ArrowStyles     `json:"arrow_styles" yaml:"arrow_styles"`
	Origin         placement.TransformOrigin `json:"transform_origin" yaml:"transform_origin"`
	Position       geometry.Point            `json:"position" yaml:"position"`
	DataAttributes map[string]string         `json:"data_attributes" yaml:"data_attributes"`
}

// Stats counts session activity.
type Stats struct {
	Computations int           `json:"computations" yaml:"computations"`
	Flips        int           `json:"flips" yaml:"flips"`
	Events       int           `json:"events" yaml:"events"`
	Listeners    int           `json:"listeners" yaml:"listeners"`
	PendingFrame bool          `json:"pending_frame" yaml:"pending_frame"`
	Scheduler    refresh.Stats `json:"scheduler" yaml:"scheduler"`
}

func dataAttributes(p geometry.Placement) map[string]string {
	return map[string]string{
		"data-side":  p.Side.String(),
		"data-align": p.Align.String(),
	}
}
