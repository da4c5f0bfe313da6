package simulate

import (
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/application/popper"
)

// Record is one applied placement.
type Record struct {
	At        time.Duration `json:"at" yaml:"at"`
	Placement string        `json:"placement" yaml:"placement"`
	Decision  string        `json:"decision" yaml:"decision"`
	Top       string        `json:"top" yaml:"top"`
	Left      string        `json:"left" yaml:"left"`
	Origin    string        `json:"transform_origin" yaml:"transform_origin"`
	Arrow     string        `json:"arrow_transform" yaml:"arrow_transform"`
}

// Applied is one replayed timeline event.
type Applied struct {
	At     time.Duration `json:"at" yaml:"at"`
	Type   string        `json:"type" yaml:"type"`
	Target string        `json:"target,omitempty" yaml:"target,omitempty"`
}

// Report summarises a replay.
type Report struct {
	Scenario        string          `json:"scenario" yaml:"scenario"`
	SessionID       string          `json:"session_id" yaml:"session_id"`
	Duration        time.Duration   `json:"duration" yaml:"duration"`
	Frames          int             `json:"frames" yaml:"frames"`
	Events          []Applied       `json:"events" yaml:"events"`
	Placements      []Record        `json:"placements" yaml:"placements"`
	Final           popper.Snapshot `json:"final" yaml:"final"`
	Stats           popper.Stats    `json:"stats" yaml:"stats"`
	LeakedListeners int             `json:"leaked_listeners" yaml:"leaked_listeners"`
	PendingFrames   int             `json:"pending_frames" yaml:"pending_frames"`
	UnmountError    string          `json:"unmount_error,omitempty" yaml:"unmount_error,omitempty"`
}

// Sides returns the resolved placement of every record, in order.
func (r *Report) Sides() []string {
	out := make([]string, 0, len(r.Placements))
	for _, p := range r.Placements {
		out = append(out, p.Placement)
	}
	return out
}

// Clean reports whether the replay left no listeners or frames behind.
func (r *Report) Clean() bool {
	return r.LeakedListeners == 0 && r.PendingFrames == 0 && r.UnmountError == ""
}
