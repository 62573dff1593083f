package audio

import (
	"io"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mandelview/constants"
	"github.com/lixenwraith/mandelview/engine"
)

// CuePlayer plays refinement cues and implements engine.Observer
// Before Init succeeds every cue is dropped, so the viewer runs silently without an audio device
type CuePlayer struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	sink        func(beep.Streamer)
	initialized bool
	log         logrus.FieldLogger
}

// PlayerOption configures a CuePlayer
type PlayerOption func(*CuePlayer)

// WithLogger sets the player logger
func WithLogger(l logrus.FieldLogger) PlayerOption {
	return func(p *CuePlayer) {
		if l != nil {
			p.log = l
		}
	}
}

// WithSink routes cues to fn instead of the speaker and marks the player ready
func WithSink(fn func(beep.Streamer)) PlayerOption {
	return func(p *CuePlayer) {
		if fn != nil {
			p.sink = fn
			p.initialized = true
		}
	}
}

// NewCuePlayer creates a player; call Init to open the speaker
func NewCuePlayer(cfg *Config, opts ...PlayerOption) *CuePlayer {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	p := &CuePlayer{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		log:   discard,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init opens the speaker and starts the mixer
func (p *CuePlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.sink = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	return nil
}

// Close stops all cues
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	p.initialized = false
	p.sink = nil
}

// Play plays a cue; quality selects the tick pitch
func (p *CuePlayer) Play(cue CueType, quality int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := CueSound(cue, quality, p.cfg)
	if s == nil {
		return
	}
	p.sink(s)
	p.log.WithFields(logrus.Fields{"cue": cue, "quality": quality}).Trace("cue played")
}

// QualityChanged implements engine.Observer; only refinement steps are audible
func (p *CuePlayer) QualityChanged(from, to int) {
	if to > from {
		p.Play(CueTick, to)
	}
}

// PhaseChanged implements engine.Observer
func (p *CuePlayer) PhaseChanged(from, to engine.Phase) {
	if to == engine.PhaseSettled {
		p.Play(CueChime, constants.QualityMax)
	}
}
