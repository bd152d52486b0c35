package render

import "github.com/gdamore/tcell/v2"

// Layer draws one part of the frame
type Layer interface {
	Render(ctx RenderContext, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented to skip a layer for a frame
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}

// RenderPriority orders layers, lower draws first
type RenderPriority int

const (
	PriorityBoard   RenderPriority = 100
	PriorityHUD     RenderPriority = 200
	PriorityOverlay RenderPriority = 300
	PriorityFooter  RenderPriority = 400
)
