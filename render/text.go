package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes text from x, clipped at maxX, returns the column after the last rune
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawCentered writes text centred on column cx, truncated to width
func drawCentered(screen tcell.Screen, cx, y, width int, text string, style tcell.Style) {
	text = runewidth.Truncate(text, width, "")
	x := cx - runewidth.StringWidth(text)/2
	drawText(screen, x, y, x+width, text, style)
}

// drawRight writes text so that it ends at column endX
func drawRight(screen tcell.Screen, endX, y int, text string, style tcell.Style) {
	drawText(screen, endX-runewidth.StringWidth(text), y, endX, text, style)
}

func sizeHint(w, h int) string {
	return fmt.Sprintf("need %dx%d", w, h)
}

// formatElapsed renders play time as mm:ss
func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
