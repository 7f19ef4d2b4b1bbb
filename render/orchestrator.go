package render

import "github.com/gdamore/tcell/v2"

type rendererEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen   tcell.Screen
	buffer   *RenderBuffer
	layers   []rendererEntry
	regCount int
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen: screen,
		buffer: NewRenderBuffer(w, h),
		layers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(l Layer, priority RenderPriority) {
	entry := rendererEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, rendererEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Size returns the current buffer dimensions
func (o *RenderOrchestrator) Size() (int, int) {
	return o.buffer.Size()
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}
