package engine

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

func TestCellAtPriority(t *testing.T) {
	g, _ := newTestGame(18, nil)
	g.Start(core.ModeClassic)
	placeFruit(g, core.Point{X: 3, Y: 3})

	snap := g.Snapshot()
	tests := []struct {
		name string
		p    core.Point
		want CellKind
	}{
		{"fruit", core.Point{X: 3, Y: 3}, CellFruit},
		{"head", core.Point{X: 8, Y: 8}, CellHead},
		{"body", core.Point{X: 9, Y: 8}, CellBody},
		{"tail", core.Point{X: 10, Y: 8}, CellBody},
		{"empty", core.Point{X: 0, Y: 17}, CellBoard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := snap.CellAt(tt.p); got != tt.want {
				t.Errorf("CellAt(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	snap.Flash = true
	if got := snap.CellAt(core.Point{X: 3, Y: 3}); got != CellGameOver {
		t.Errorf("flash over fruit = %v, want game over", got)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	g, _ := newTestGame(18, nil)
	g.Start(core.ModeClassic)
	placeFruit(g, core.Point{X: 0, Y: 0})

	snap := g.Snapshot()
	g.Tick()

	if head, _ := snap.Head(); head != (core.Point{X: 8, Y: 8}) {
		t.Errorf("snapshot head changed to %v after tick", head)
	}
	if !snap.Occupied(core.Point{X: 10, Y: 8}) {
		t.Error("snapshot board changed after tick")
	}
}

func TestSnapshotBeforeStart(t *testing.T) {
	g, _ := newTestGame(18, nil)
	snap := g.Snapshot()
	if _, ok := snap.Head(); ok {
		t.Error("head reported before first game")
	}
	if got := snap.CellAt(core.Point{X: 8, Y: 8}); got != CellBoard {
		t.Errorf("CellAt before start = %v, want board", got)
	}
}
