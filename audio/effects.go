package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/mandelview/constants"
)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// sample evaluates one period-normalised point of the wave, phase in [0, 1)
func (w WaveType) sample(phase float64) float64 {
	if w == WaveSquare {
		if phase < 0.5 {
			return 1
		}
		return -1
	}
	return math.Sin(2 * math.Pi * phase)
}

// oscillator emits a fixed number of frames of a periodic wave
type oscillator struct {
	wave      WaveType
	step      float64
	phase     float64
	remaining int
}

// NewOscillator creates a streamer producing duration worth of the given wave
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:      wave,
		step:      freq / float64(rate),
		remaining: rate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	n = min(len(samples), o.remaining)
	for i := 0; i < n; i++ {
		v := o.wave.sample(o.phase)
		samples[i] = [2]float64{v, v}
		o.phase = math.Mod(o.phase+o.step, 1)
	}
	o.remaining -= n
	return n, n > 0
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.releaseStart {
			vol = max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 is silent since math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// TickFrequency returns the tick pitch for a quality level, a fifth apart per level
func TickFrequency(quality int) float64 {
	return constants.TickBaseFrequency * math.Pow(1.5, float64(quality-constants.QualityMin))
}

// CreateTickSound generates a short blip whose pitch rises with the quality level reached
func CreateTickSound(cfg *Config, quality int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(TickFrequency(quality), constants.TickSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.TickSoundDuration, constants.TickSoundAttack, constants.TickSoundRelease, rate)

	return newVolume(shaped, cfg.volume(CueTick))
}

// CreateChimeSound generates a two-note rising chime with a soft octave overtone
func CreateChimeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	note := func(freq float64, d, release time.Duration) beep.Streamer {
		fund := NewEnvelope(NewOscillator(freq, d, WaveSine, rate), d, constants.ChimeSoundAttack, release, rate)
		over := NewEnvelope(NewOscillator(freq*2, d, WaveSine, rate), d, constants.ChimeSoundAttack, release/2, rate)
		return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	}

	// E5 then A5
	seq := beep.Seq(
		note(659.25, constants.ChimeNote1Duration, constants.ChimeNote1Release),
		note(880.0, constants.ChimeNote2Duration, constants.ChimeNote2Release),
	)
	return newVolume(seq, cfg.volume(CueChime))
}

// CueSound returns the streamer for a cue; quality only affects ticks
func CueSound(cue CueType, quality int, cfg *Config) beep.Streamer {
	switch cue {
	case CueTick:
		return CreateTickSound(cfg, quality)
	case CueChime:
		return CreateChimeSound(cfg)
	default:
		return nil
	}
}
