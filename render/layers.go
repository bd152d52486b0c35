package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// cellColors maps cell kinds to board colours
var cellColors = map[engine.CellKind]tcell.Color{
	engine.CellBoard:    constants.ColorBoard,
	engine.CellBody:     constants.ColorBody,
	engine.CellHead:     constants.ColorHead,
	engine.CellFruit:    constants.ColorFruit,
	engine.CellGameOver: constants.ColorGameOver,
}

// CellStyle returns the style for a board cell of kind
func CellStyle(kind engine.CellKind) tcell.Style {
	return tcell.StyleDefault.Background(cellColors[kind])
}

func baseStyle() tcell.Style {
	return tcell.StyleDefault.Background(constants.ColorScreenBg).Foreground(constants.ColorHUDText)
}

// boardLayer draws the frame and every board cell
type boardLayer struct{}

func (boardLayer) Render(ctx RenderContext, screen tcell.Screen) {
	l := ctx.Layout
	snap := ctx.Snap

	frame := baseStyle().Foreground(constants.ColorHUDMuted)
	x0, y0, x1, y1 := l.FrameRect()
	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, '─', nil, frame)
		screen.SetContent(x, y1, '─', nil, frame)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, '│', nil, frame)
		screen.SetContent(x1, y, '│', nil, frame)
	}
	screen.SetContent(x0, y0, '┌', nil, frame)
	screen.SetContent(x1, y0, '┐', nil, frame)
	screen.SetContent(x0, y1, '└', nil, frame)
	screen.SetContent(x1, y1, '┘', nil, frame)

	for y := 0; y < snap.Size; y++ {
		for x := 0; x < snap.Size; x++ {
			p := core.Point{X: x, Y: y}
			style := CellStyle(snap.CellAt(p))
			sx, sy := l.CellOrigin(p)
			for c := 0; c < constants.CellWidth; c++ {
				screen.SetContent(sx+c, sy, constants.CellRune, nil, style)
			}
		}
	}
}

// hudLayer draws score, best, mode and state above the board
// Right-aligned text is drawn first and clips the left side on narrow boards
type hudLayer struct{}

func (hudLayer) Render(ctx RenderContext, screen tcell.Screen) {
	l := ctx.Layout
	snap := ctx.Snap
	style := baseStyle()
	accent := style.Foreground(constants.ColorHUDAccent).Bold(true)
	muted := style.Foreground(constants.ColorHUDMuted)

	left := l.OriginX - constants.BorderSize
	right := l.OriginX + l.BoardCols + constants.BorderSize

	scores := fmt.Sprintf("score %d  best %d", snap.Score, snap.Best)
	drawRight(screen, right, l.HUDY, scores, style)
	clip := right - runewidth.StringWidth(scores) - 1

	x := drawText(screen, left, l.HUDY, clip, constants.TitleText, accent)
	if snap.NewBest {
		drawText(screen, x+2, l.HUDY, clip, constants.NewBestText, accent)
	}

	info := fmt.Sprintf("%s %dms %s", snap.Mode.Label(), snap.Interval.Milliseconds(), formatElapsed(snap.Elapsed))
	if ctx.Muted {
		info = "mute " + info
	}
	drawRight(screen, right, l.HUDY+1, info, muted)
	clip = right - runewidth.StringWidth(info) - 1

	switch {
	case snap.Paused:
		drawText(screen, left, l.HUDY+1, clip, constants.PausedText, accent)
	case snap.Phase == engine.PhaseGameOver:
		drawText(screen, left, l.HUDY+1, clip, "game over: "+snap.Cause.String(), style.Foreground(constants.ColorGameOver))
	}
}

// overlayLayer draws the mode menu and the start prompt over the board
type overlayLayer struct{}

func (overlayLayer) IsVisible(ctx RenderContext) bool {
	s := ctx.Snap
	return s.Menu || s.Paused || (s.Phase != engine.PhaseRunning && !s.Flash)
}

func (overlayLayer) Render(ctx RenderContext, screen tcell.Screen) {
	l := ctx.Layout
	snap := ctx.Snap
	cx := l.OriginX + l.BoardCols/2
	cy := l.OriginY + l.BoardRows/2
	style := tcell.StyleDefault.Background(constants.ColorMenuBg).Foreground(constants.ColorHUDText)
	accent := style.Foreground(constants.ColorHUDAccent).Bold(true)

	var lines []string
	switch {
	case snap.Menu:
		lines = append(lines, constants.MenuTitleText, "")
		for i, m := range core.Modes {
			marker := " "
			if m == snap.Mode {
				marker = "*"
			}
			lines = append(lines, fmt.Sprintf("%s %d  %s", marker, i+1, m.Label()))
		}
	case snap.Paused:
		lines = append(lines, constants.PausedText, "p to resume")
	default:
		lines = append(lines, "press enter to play", "m for modes")
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	width += 4
	if width > l.BoardCols {
		width = l.BoardCols
	}

	top := cy - len(lines)/2
	boxX := cx - width/2
	for i, line := range lines {
		y := top + i
		for x := boxX; x < boxX+width; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
		lineStyle := style
		if i == 0 {
			lineStyle = accent
		}
		drawCentered(screen, cx, y, width, line, lineStyle)
	}
}

// footerLayer draws key help below the board
type footerLayer struct{}

func (footerLayer) Render(ctx RenderContext, screen tcell.Screen) {
	help := constants.IdleHelpText
	if ctx.Snap.Phase == engine.PhaseRunning {
		help = constants.PlayHelpText
	}
	drawCentered(screen, ctx.ScreenWidth/2, ctx.Layout.FooterY, ctx.ScreenWidth, help,
		baseStyle().Foreground(constants.ColorHUDMuted))
}
