package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/events"
)

// SoundManager plays game sound effects through a shared mixer
// Every Play call is a no-op until Initialize succeeds, or while muted
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	played      [soundTypeCount]atomic.Int64
}

// NewSoundManager creates a sound manager, nil cfg selects the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferLength)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker.Close for the shared device, clearing the mixer silences it
	sm.initialized = false
}

// SetMuted sets the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted returns the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Played returns how many times soundType reached the mixer
func (sm *SoundManager) Played(soundType SoundType) int64 {
	if soundType < 0 || soundType >= soundTypeCount {
		return 0
	}
	return sm.played[soundType].Load()
}

// Play queues a sound effect on the mixer
func (sm *SoundManager) Play(soundType SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(soundType, sm.config)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[soundType].Add(1)
}

// PlayEat plays the fruit blip
func (sm *SoundManager) PlayEat() { sm.Play(SoundEat) }

// PlaySpeedUp plays the rising two-tone
func (sm *SoundManager) PlaySpeedUp() { sm.Play(SoundSpeedUp) }

// PlayGameOver plays the falling buzz
func (sm *SoundManager) PlayGameOver() { sm.Play(SoundGameOver) }

// PlayNewBest plays the record arpeggio
func (sm *SoundManager) PlayNewBest() { sm.Play(SoundNewBest) }

// HandleEvent implements events.Handler
func (sm *SoundManager) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventFruitEaten:
		sm.PlayEat()
	case events.EventSpeedUp:
		sm.PlaySpeedUp()
	case events.EventGameOver:
		sm.PlayGameOver()
	case events.EventNewBestScore:
		sm.PlayNewBest()
	default:
		log.Printf("audio: unexpected event %s", ev.Type)
	}
}

// EventTypes implements events.Handler
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFruitEaten,
		events.EventSpeedUp,
		events.EventGameOver,
		events.EventNewBestScore,
	}
}
