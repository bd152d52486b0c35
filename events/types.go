package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventGameStarted signals a new game entered the running phase
	// Trigger: Game.Start | Payload: *GameStartedPayload
	EventGameStarted EventType = iota

	// EventFruitEaten signals the head reached the fruit
	// Trigger: Game.Tick | Consumer: SoundManager | Payload: *FruitEatenPayload
	EventFruitEaten

	// EventSpeedUp signals the tick interval shrank
	// Trigger: Game.Tick every SpeedUpEvery points | Consumer: SoundManager | Payload: *SpeedUpPayload
	EventSpeedUp

	// EventGameOver signals the end of a game
	// Trigger: wall, self collision or full board | Consumer: SoundManager, logger | Payload: *GameOverPayload
	EventGameOver

	// EventNewBestScore signals a persisted record
	// Trigger: game over with score above best | Consumer: SoundManager | Payload: *NewBestScorePayload
	EventNewBestScore

	// EventPauseToggled signals pause state change
	// Trigger: Game.TogglePause | Payload: *PausePayload
	EventPauseToggled
)

var eventNames = map[EventType]string{
	EventGameStarted:  "GameStarted",
	EventFruitEaten:   "FruitEaten",
	EventSpeedUp:      "SpeedUp",
	EventGameOver:     "GameOver",
	EventNewBestScore: "NewBestScore",
	EventPauseToggled: "PauseToggled",
}

// String returns the event name for logging
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
