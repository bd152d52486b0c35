package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InitialTickInterval is the simulation step delay at the start of a game
	InitialTickInterval = 150 * time.Millisecond

	// SpeedUpStep is subtracted from the tick interval on every speed-up
	SpeedUpStep = 15 * time.Millisecond

	// SpeedUpEvery is the number of points between speed-ups
	SpeedUpEvery = 5

	// MinTickInterval floors the tick interval so long games stay playable
	MinTickInterval = 30 * time.Millisecond

	// GameOverFlashDuration is how long the board shows the game-over color
	GameOverFlashDuration = 500 * time.Millisecond
)

// TickIntervalForScore returns the tick interval after reaching score
func TickIntervalForScore(score int) time.Duration {
	interval := InitialTickInterval - time.Duration(score/SpeedUpEvery)*SpeedUpStep
	if interval < MinTickInterval {
		return MinTickInterval
	}
	return interval
}
