package playground

import "time"

// FrameMsg drives the animation-frame queue. Each one flushes pending
// frames with its timestamp.
type FrameMsg time.Time
