package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Handle identifies a drawable owned by the presentation layer.
type Handle int

// Layer is one draw command: put Image into Dst (world units), optionally
// mirrored vertically. Layers are drawn in order.
type Layer struct {
	Image Handle
	Dst   core.Rect
	FlipV bool
}

// Atlas resolves sprite names to handles and reports their natural size in
// world units.
type Atlas interface {
	Lookup(name string) (Handle, bool)
	Size(img Handle) (w, h int)
}

// InputSource delivers the events that arrived since the previous poll.
type InputSource interface {
	PollInputs() []core.Event
}

// Renderer draws a frame of layers and shows it.
type Renderer interface {
	DrawFrame(layers []Layer)
	Present() error
}
