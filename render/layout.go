package render

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Layout places the board frame, HUD and footer on screen
type Layout struct {
	Fits bool

	// Top-left of the board interior in screen cells
	OriginX int
	OriginY int

	// Interior size in screen cells
	BoardCols int
	BoardRows int

	HUDY    int
	FooterY int
}

// RequiredSize returns the smallest screen that fits a board of size
func RequiredSize(size int) (width, height int) {
	width = size*constants.CellWidth + 2*constants.BorderSize
	height = constants.HUDHeight + size + 2*constants.BorderSize + constants.FooterHeight
	return width, height
}

// ComputeLayout centres a board of size on a screenW x screenH screen
func ComputeLayout(screenW, screenH, size int) Layout {
	l := Layout{
		BoardCols: size * constants.CellWidth,
		BoardRows: size,
	}

	needW, needH := RequiredSize(size)
	if screenW < needW || screenH < needH {
		return l
	}
	l.Fits = true

	frameX := (screenW - needW) / 2
	frameY := constants.HUDHeight + (screenH-needH)/2

	l.OriginX = frameX + constants.BorderSize
	l.OriginY = frameY + constants.BorderSize
	l.HUDY = frameY - constants.HUDHeight
	l.FooterY = frameY + size + 2*constants.BorderSize
	return l
}

// CellOrigin returns the screen position of the leftmost column of board cell p
func (l Layout) CellOrigin(p core.Point) (x, y int) {
	return l.OriginX + p.X*constants.CellWidth, l.OriginY + p.Y
}

// FrameRect returns the outer frame bounds, inclusive
func (l Layout) FrameRect() (x0, y0, x1, y1 int) {
	x0 = l.OriginX - constants.BorderSize
	y0 = l.OriginY - constants.BorderSize
	x1 = l.OriginX + l.BoardCols
	y1 = l.OriginY + l.BoardRows
	return x0, y0, x1, y1
}
