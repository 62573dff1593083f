package engine

import "github.com/lixenwraith/mandelview/constants"

// Phase is the refinement state derived from RenderState
type Phase uint8

const (
	PhaseMoving Phase = iota
	PhaseSweeping
	PhaseSettled
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseMoving:
		return "moving"
	case PhaseSweeping:
		return "sweeping"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Any phase may return to moving; sweeping is entered only from moving and settled only from sweeping
var validTransitions = map[Phase][]Phase{
	PhaseMoving:   {PhaseMoving, PhaseSweeping},
	PhaseSweeping: {PhaseSweeping, PhaseSettled, PhaseMoving},
	PhaseSettled:  {PhaseSettled, PhaseMoving},
}

// CanTransition reports whether the controller can move between two phases in one tick
func CanTransition(from, to Phase) bool {
	for _, valid := range validTransitions[from] {
		if valid == to {
			return true
		}
	}
	return false
}

// RenderState tracks progressive refinement
// While Moving, Quality is held at QualityMin and Reveal at 1.0
type RenderState struct {
	Quality int
	Reveal  float64
	Moving  bool
}

// NewRenderState returns the startup state: coarsest level, nothing revealed yet
func NewRenderState() RenderState {
	return RenderState{Quality: constants.QualityMin}
}

// Schedule advances the sweep while idle or pins the coarse full frame while moving
func (s *RenderState) Schedule() {
	if s.Moving {
		s.Quality = constants.QualityMin
		s.Reveal = 1.0
		return
	}

	if s.Reveal < 1.0 {
		s.Reveal = min(s.Reveal+constants.RevealIncrement, 1.0)
	} else if s.Quality < constants.QualityMax {
		s.Quality++
		s.Reveal = 0.0
	}
}

// Scale returns the sample-grid downscale factor 2^(QualityMax-Quality)
func (s RenderState) Scale() int {
	return 1 << (constants.QualityMax - s.Quality)
}

// Phase classifies the state
func (s RenderState) Phase() Phase {
	switch {
	case s.Moving:
		return PhaseMoving
	case s.Quality >= constants.QualityMax && s.Reveal >= 1.0:
		return PhaseSettled
	default:
		return PhaseSweeping
	}
}
