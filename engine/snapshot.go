package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
)

// CellKind tells the renderer what occupies a board cell
type CellKind uint8

const (
	CellBoard CellKind = iota
	CellBody
	CellHead
	CellFruit
	CellGameOver
)

// Snapshot is an immutable copy of game state for rendering
type Snapshot struct {
	ID        string
	Phase     Phase
	Mode      core.Mode
	Size      int
	Parts     []core.Point
	Fruit     core.Point
	HasFruit  bool
	Direction core.Direction
	Score     int
	Best      int
	NewBest   bool
	Flash     bool
	Menu      bool
	Paused    bool
	Interval  time.Duration
	Elapsed   time.Duration
	Cause     events.GameOverCause

	board *core.Board
}

// Snapshot copies the current state under a read lock
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := Snapshot{
		ID:        g.id,
		Phase:     g.phase,
		Mode:      g.mode,
		Size:      g.board.Size(),
		Fruit:     g.fruit,
		HasFruit:  g.hasFruit,
		Direction: g.pending,
		Score:     g.score,
		Best:      g.best,
		NewBest:   g.newBest,
		Menu:      g.menu,
		Paused:    g.clock.IsPaused(),
		Interval:  g.interval,
		Cause:     g.cause,
		board:     g.board.Clone(),
	}

	if g.snake != nil {
		snap.Parts = make([]core.Point, len(g.snake.Parts))
		copy(snap.Parts, g.snake.Parts)
	}

	if g.phase == PhaseRunning {
		snap.Elapsed = g.clock.Elapsed()
	} else {
		snap.Elapsed = g.playTime
	}

	if !g.flashUntil.IsZero() && g.clock.RealTime().Before(g.flashUntil) {
		snap.Flash = true
	}

	return snap
}

// Head returns the snake head, false before the first game
func (s Snapshot) Head() (core.Point, bool) {
	if len(s.Parts) == 0 {
		return core.Point{}, false
	}
	return s.Parts[0], true
}

// Occupied reports board occupancy at p
func (s Snapshot) Occupied(p core.Point) bool {
	if s.board == nil {
		return false
	}
	return s.board.Occupied(p)
}

// CellAt resolves the cell kind in priority order:
// game-over flash, fruit, head, body, empty board
func (s Snapshot) CellAt(p core.Point) CellKind {
	if s.Flash {
		return CellGameOver
	}
	if s.HasFruit && s.Fruit == p {
		return CellFruit
	}
	if head, ok := s.Head(); ok && head == p {
		return CellHead
	}
	if s.Occupied(p) {
		return CellBody
	}
	return CellBoard
}
