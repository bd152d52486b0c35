package constants

import "time"

// Audio output
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
)

// Eat blip
const (
	EatSoundFreq     = 660.0
	EatSoundDuration = 70 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatSoundRelease  = 40 * time.Millisecond
)

// Speed-up two-tone, rising
const (
	SpeedUpNote1Freq    = 523.25 // C5
	SpeedUpNote2Freq    = 783.99 // G5
	SpeedUpNoteDuration = 90 * time.Millisecond
	SpeedUpAttack       = 5 * time.Millisecond
	SpeedUpRelease      = 30 * time.Millisecond
)

// Game-over buzz, falling; lasts as long as the board flash
const (
	GameOverStartFreq = 220.0
	GameOverEndFreq   = 80.0
	GameOverDuration  = GameOverFlashDuration
	GameOverAttack    = 10 * time.Millisecond
	GameOverRelease   = 200 * time.Millisecond
)

// New-best arpeggio
const (
	NewBestNoteDuration = 80 * time.Millisecond
	NewBestNoteGap      = 15 * time.Millisecond
	NewBestAttack       = 5 * time.Millisecond
	NewBestRelease      = 50 * time.Millisecond
)

// NewBestNotes is the arpeggio, C major up to the octave
var NewBestNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}
