package render

import (
	"github.com/lixenwraith/vi-snake/engine"
)

// RenderContext provides frame state for layers, passed by value
type RenderContext struct {
	Snap   engine.Snapshot
	Layout Layout

	// Sound state for the HUD
	Muted bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}
