// Package frames provides animation-frame schedulers for hosts that have no
// native frame callback: a manually flushed queue and a ticker that flushes
// it at a fixed frame rate.
package frames

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// DefaultInterval is the frame period used by the ticker, roughly 60fps.
const DefaultInterval = 16 * time.Millisecond

type pendingFrame struct {
	id       ports.FrameID
	callback ports.FrameCallback
}

// ManualFrames queues frame callbacks until Flush is called.
type ManualFrames struct {
	mu     sync.Mutex
	nextID ports.FrameID
	queue  []pendingFrame
	fired  int
}

// NewManualFrames creates an empty frame queue.
func NewManualFrames() *ManualFrames {
	return &ManualFrames{}
}

// RequestFrame implements ports.FrameScheduler.
func (m *ManualFrames) RequestFrame(callback ports.FrameCallback) ports.FrameID {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.queue = append(m.queue, pendingFrame{id: m.nextID, callback: callback})
	return m.nextID
}

// CancelFrame implements ports.FrameScheduler.
func (m *ManualFrames) CancelFrame(id ports.FrameID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, frame := range m.queue {
		if frame.id == id {
			m.queue = append(m.queue[:i], m.queue[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued callbacks.
func (m *ManualFrames) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Fired returns the total number of callbacks run so far.
func (m *ManualFrames) Fired() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fired
}

// Flush runs every callback queued before the call, in request order, with
// now as the frame timestamp. Frames requested by those callbacks wait for
// the next Flush. It returns the number of callbacks run.
func (m *ManualFrames) Flush(now time.Time) int {
	m.mu.Lock()
	batch := m.queue
	m.queue = nil
	m.fired += len(batch)
	m.mu.Unlock()

	for _, frame := range batch {
		if frame.callback != nil {
			frame.callback(now)
		}
	}
	return len(batch)
}

var _ ports.FrameScheduler = (*ManualFrames)(nil)
