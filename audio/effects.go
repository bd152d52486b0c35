package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// sweep generates a wave whose frequency glides linearly from start to end
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates a gliding oscillator, equal from and to give a steady tone
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies linear attack and release to a stream and cuts it at duration
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol
// math.Log2(0) is -Inf, so zero volume is silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateEatSound generates a short sine blip
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, constants.EatSoundFreq)
	if err != nil {
		// Sample rate too low for the pitch
		tone = NewSweep(constants.EatSoundFreq, constants.EatSoundFreq, constants.EatSoundDuration, WaveSine, rate)
	}
	shaped := NewEnvelope(tone, constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundEat))
}

// CreateSpeedUpSound generates a rising two-tone
func CreateSpeedUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.SpeedUpNoteDuration

	n1 := NewEnvelope(NewSweep(constants.SpeedUpNote1Freq, constants.SpeedUpNote1Freq, d, WaveSquare, rate),
		d, constants.SpeedUpAttack, constants.SpeedUpRelease, rate)
	n2 := NewEnvelope(NewSweep(constants.SpeedUpNote2Freq, constants.SpeedUpNote2Freq, d, WaveSquare, rate),
		d, constants.SpeedUpAttack, constants.SpeedUpRelease, rate)

	// Square is harsh at full level
	return newVolume(beep.Seq(n1, n2), 0.4*effectVolume(cfg, SoundSpeedUp))
}

// CreateGameOverSound generates a falling square buzz
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.GameOverDuration

	buzz := NewSweep(constants.GameOverStartFreq, constants.GameOverEndFreq, d, WaveSquare, rate)
	body := NewSweep(constants.GameOverStartFreq/2, constants.GameOverEndFreq/2, d, WaveSaw, rate)
	mixed := beep.Mix(newVolume(buzz, 0.3), newVolume(body, 0.5))
	shaped := NewEnvelope(mixed, d, constants.GameOverAttack, constants.GameOverRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundGameOver))
}

// CreateNewBestSound generates a rising arpeggio with short gaps
func CreateNewBestSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.NewBestNoteDuration

	notes := make([]beep.Streamer, 0, 2*len(constants.NewBestNotes))
	for _, freq := range constants.NewBestNotes {
		note := NewSweep(freq, freq, d, WaveSine, rate)
		notes = append(notes,
			NewEnvelope(note, d, constants.NewBestAttack, constants.NewBestRelease, rate),
			beep.Silence(rate.N(constants.NewBestNoteGap)),
		)
	}

	return newVolume(beep.Seq(notes...), effectVolume(cfg, SoundNewBest))
}

// GetSoundEffect returns the streamer for soundType, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundSpeedUp:
		return CreateSpeedUpSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	case SoundNewBest:
		return CreateNewBestSound(cfg)
	default:
		return nil
	}
}
