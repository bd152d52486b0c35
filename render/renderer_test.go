package render

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestGame() (*engine.Game, *engine.MockTimeProvider) {
	mock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	g := engine.NewGame(engine.GameConfig{
		BoardSize:    18,
		Rand:         rand.New(rand.NewSource(2)),
		TimeProvider: mock,
	})
	return g, mock
}

func bgAt(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func rowText(screen tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(screen tcell.Screen, w, h int) string {
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(rowText(screen, y, w))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(80, 24, 18)
	if !l.Fits {
		t.Fatal("18x18 board should fit 80x24")
	}
	if l.OriginX != 22 || l.OriginY != 3 {
		t.Errorf("origin = (%d,%d), want (22,3)", l.OriginX, l.OriginY)
	}
	if l.HUDY != 0 || l.FooterY != 22 {
		t.Errorf("hud=%d footer=%d, want 0 and 22", l.HUDY, l.FooterY)
	}
	if x, y := l.CellOrigin(core.Point{X: 1, Y: 2}); x != 24 || y != 5 {
		t.Errorf("CellOrigin(1,2) = (%d,%d), want (24,5)", x, y)
	}

	w, h := RequiredSize(18)
	if ComputeLayout(w-1, h, 18).Fits || ComputeLayout(w, h-1, 18).Fits {
		t.Error("layout fits a screen below the required size")
	}
	if !ComputeLayout(w, h, 18).Fits {
		t.Error("layout does not fit the exact required size")
	}
}

func TestDrawRunningBoardColors(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	g, _ := newTestGame()
	g.Start(core.ModeClassic)

	snap := g.Snapshot()
	NewRenderer(screen).Draw(snap)
	l := ComputeLayout(80, 24, snap.Size)

	check := func(name string, p core.Point, want tcell.Color) {
		t.Helper()
		x, y := l.CellOrigin(p)
		for c := 0; c < constants.CellWidth; c++ {
			if got := bgAt(screen, x+c, y); got != want {
				t.Errorf("%s at %v col %d: bg = %v, want %v", name, p, c, got, want)
			}
		}
	}

	check("head", core.Point{X: 8, Y: 8}, constants.ColorHead)
	check("body", core.Point{X: 9, Y: 8}, constants.ColorBody)
	check("tail", core.Point{X: 10, Y: 8}, constants.ColorBody)
	check("fruit", snap.Fruit, constants.ColorFruit)

	empty := core.Point{X: 0, Y: 0}
	if snap.Fruit == empty {
		empty = core.Point{X: 17, Y: 17}
	}
	check("board", empty, constants.ColorBoard)

	text := screenText(screen, 80, 24)
	if !strings.Contains(text, "score 0") || !strings.Contains(text, "best 0") {
		t.Errorf("HUD missing score/best:\n%s", text)
	}
	if !strings.Contains(text, "150ms") {
		t.Errorf("HUD missing interval:\n%s", text)
	}
	if strings.Contains(text, "press enter") {
		t.Error("start prompt shown during play")
	}
}

func TestDrawGameOverFlash(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	g, mock := newTestGame()
	g.Start(core.ModeClassic)
	for i := 0; i < 20 && g.Phase() == engine.PhaseRunning; i++ {
		g.Tick()
	}
	if g.Phase() != engine.PhaseGameOver {
		t.Fatalf("phase = %v, snake should hit the wall", g.Phase())
	}

	r := NewRenderer(screen)
	r.Draw(g.Snapshot())
	l := ComputeLayout(80, 24, 18)
	for _, p := range []core.Point{{X: 0, Y: 0}, {X: 17, Y: 17}, {X: 9, Y: 3}} {
		x, y := l.CellOrigin(p)
		if got := bgAt(screen, x, y); got != constants.ColorGameOver {
			t.Errorf("cell %v during flash = %v, want game-over colour", p, got)
		}
	}
	if strings.Contains(screenText(screen, 80, 24), "press enter") {
		t.Error("prompt drawn over the flash")
	}

	mock.Advance(constants.GameOverFlashDuration)
	r.Draw(g.Snapshot())
	text := screenText(screen, 80, 24)
	if !strings.Contains(text, "press enter to play") {
		t.Errorf("prompt missing after flash:\n%s", text)
	}
	if !strings.Contains(text, "game over: wall") {
		t.Errorf("cause missing from HUD:\n%s", text)
	}
}

func TestDrawIdlePromptAndFooter(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	g, _ := newTestGame()
	NewRenderer(screen).Draw(g.Snapshot())

	text := screenText(screen, 80, 24)
	if !strings.Contains(text, "press enter to play") {
		t.Errorf("idle prompt missing:\n%s", text)
	}
	if !strings.Contains(rowText(screen, 22, 80), constants.IdleHelpText) {
		t.Errorf("footer = %q, want idle help", rowText(screen, 22, 80))
	}
}

func TestDrawMenu(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	g, _ := newTestGame()
	g.ToggleMenu()
	NewRenderer(screen).Draw(g.Snapshot())

	text := screenText(screen, 80, 24)
	for _, m := range core.Modes {
		if !strings.Contains(text, m.Label()) {
			t.Errorf("menu missing %q:\n%s", m.Label(), text)
		}
	}
	if !strings.Contains(text, constants.MenuTitleText) {
		t.Errorf("menu title missing:\n%s", text)
	}
}

func TestDrawPausedAndMuted(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	g, _ := newTestGame()
	g.Start(core.ModeNoWalls)
	g.TogglePause()

	r := NewRenderer(screen)
	r.SetSoundState(func() bool { return true })
	r.Draw(g.Snapshot())

	text := screenText(screen, 80, 24)
	if !strings.Contains(text, constants.PausedText) {
		t.Errorf("paused marker missing:\n%s", text)
	}
	if !strings.Contains(rowText(screen, 1, 80), "mute") {
		t.Errorf("mute marker missing from HUD: %q", rowText(screen, 1, 80))
	}
	if !strings.Contains(rowText(screen, 1, 80), core.ModeNoWalls.Label()) {
		t.Errorf("mode missing from HUD: %q", rowText(screen, 1, 80))
	}
}

func TestDrawTooSmall(t *testing.T) {
	screen := newTestScreen(t, 30, 10)
	g, _ := newTestGame()
	g.Start(core.ModeClassic)
	NewRenderer(screen).Draw(g.Snapshot())

	text := screenText(screen, 30, 10)
	if !strings.Contains(text, constants.TooSmallText) {
		t.Errorf("too-small message missing:\n%s", text)
	}
	if !strings.Contains(text, "need 38x23") {
		t.Errorf("size hint missing:\n%s", text)
	}
}

type recordingLayer struct {
	name  string
	order *[]string
}

func (l recordingLayer) Render(RenderContext, tcell.Screen) { *l.order = append(*l.order, l.name) }

func TestRegisterOrdersByPriority(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := &Renderer{screen: screen}

	var order []string
	r.Register(recordingLayer{"footer", &order}, PriorityFooter)
	r.Register(recordingLayer{"board", &order}, PriorityBoard)
	r.Register(recordingLayer{"hud-a", &order}, PriorityHUD)
	r.Register(recordingLayer{"hud-b", &order}, PriorityHUD)

	g, _ := newTestGame()
	r.Draw(g.Snapshot())

	want := []string{"board", "hud-a", "hud-b", "footer"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", order, want)
	}
}
