package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Renderer draws game snapshots onto a tcell screen
// Draw only reads the snapshot, it is safe to call while the game ticks
type Renderer struct {
	screen   tcell.Screen
	layers   []layerEntry
	regCount int

	soundMuted func() bool
}

// NewRenderer creates a renderer with the board, HUD, overlay and footer layers
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{
		screen: screen,
		layers: make([]layerEntry, 0, 4),
	}
	r.Register(boardLayer{}, PriorityBoard)
	r.Register(hudLayer{}, PriorityHUD)
	r.Register(overlayLayer{}, PriorityOverlay)
	r.Register(footerLayer{}, PriorityFooter)
	return r
}

// SetSoundState registers the mute query shown in the HUD
func (r *Renderer) SetSoundState(muted func() bool) {
	r.soundMuted = muted
}

// Register adds a layer at the specified priority, keeps sorted order via insertion sort
func (r *Renderer) Register(layer Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    layer,
		priority: priority,
		index:    r.regCount,
	}
	r.regCount++

	pos := len(r.layers)
	for i, e := range r.layers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	r.layers = append(r.layers, layerEntry{})
	copy(r.layers[pos+1:], r.layers[pos:])
	r.layers[pos] = entry
}

// Draw renders one frame: clear, layers in priority order, show
func (r *Renderer) Draw(snap engine.Snapshot) {
	w, h := r.screen.Size()
	r.screen.Fill(' ', tcell.StyleDefault.Background(constants.ColorScreenBg))

	ctx := RenderContext{
		Snap:         snap,
		Layout:       ComputeLayout(w, h, snap.Size),
		ScreenWidth:  w,
		ScreenHeight: h,
	}
	if r.soundMuted != nil {
		ctx.Muted = r.soundMuted()
	}

	if !ctx.Layout.Fits {
		drawTooSmall(ctx, r.screen)
		r.screen.Show()
		return
	}

	for _, entry := range r.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.layer.Render(ctx, r.screen)
	}

	r.screen.Show()
}

func drawTooSmall(ctx RenderContext, screen tcell.Screen) {
	style := tcell.StyleDefault.Foreground(constants.ColorGameOver).Background(constants.ColorScreenBg)
	needW, needH := RequiredSize(ctx.Snap.Size)
	drawCentered(screen, ctx.ScreenWidth/2, ctx.ScreenHeight/2, ctx.ScreenWidth, constants.TooSmallText, style)
	drawCentered(screen, ctx.ScreenWidth/2, ctx.ScreenHeight/2+1, ctx.ScreenWidth,
		sizeHint(needW, needH), style.Foreground(constants.ColorHUDMuted))
}
