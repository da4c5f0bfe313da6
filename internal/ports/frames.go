package ports

import "time"

// FrameID identifies a requested animation frame. Zero is never issued.
type FrameID uint64

// FrameCallback runs once when the frame fires; now is the frame timestamp.
type FrameCallback func(now time.Time)

// FrameScheduler is the host's animation-frame primitive. Callbacks run on
// the host's event thread, at most once per request, in request order.
type FrameScheduler interface {
	RequestFrame(callback FrameCallback) FrameID
	// CancelFrame drops a pending request. Cancelling an unknown or already
	// fired frame is a no-op.
	CancelFrame(id FrameID)
}

// Clock returns the current time. Tests and simulations inject virtual
// clocks.
type Clock func() time.Time
