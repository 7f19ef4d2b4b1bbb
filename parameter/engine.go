package parameter

import "time"

// Presentation Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the initial capacity of the presentation event queue
	EventQueueSize = 256
)
