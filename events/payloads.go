package events

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// GameOverCause describes why a game ended
type GameOverCause uint8

const (
	CauseWall GameOverCause = iota
	CauseSelf
	CauseBoardFull
)

// String implements fmt.Stringer
func (c GameOverCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board full"
	default:
		return "unknown"
	}
}

// GameStartedPayload identifies the new game
type GameStartedPayload struct {
	ID   string
	Mode core.Mode
}

// FruitEatenPayload carries the score after eating
type FruitEatenPayload struct {
	Score int
	At    core.Point
}

// SpeedUpPayload carries the new tick interval
type SpeedUpPayload struct {
	Interval time.Duration
}

// GameOverPayload carries the final score and cause
type GameOverPayload struct {
	ID    string
	Score int
	Cause GameOverCause
	Ticks uint64
}

// NewBestScorePayload carries the record and the one it replaced
type NewBestScorePayload struct {
	Score    int
	Previous int
}

// PausePayload carries the new pause state
type PausePayload struct {
	Paused bool
}
