package render

import "time"

// Layer is implemented by every visual surface
type Layer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Clock reports presentation time; engine.Scheduler satisfies it
type Clock interface {
	Now() time.Duration
}
