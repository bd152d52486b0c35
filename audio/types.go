package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Fruit eaten
	SoundSpeedUp                   // Tick interval shrank
	SoundGameOver                  // Collision or full board
	SoundNewBest                   // Best score beaten
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"eat", "speedup", "gameover", "newbest"}

// String implements fmt.Stringer
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
