package audio

// CueType identifies a refinement cue
type CueType int

const (
	CueTick  CueType = iota // quality level rose
	CueChime                // refinement settled at full resolution
	cueTypeCount
)

// String returns the cue name
func (c CueType) String() string {
	switch c {
	case CueTick:
		return "tick"
	case CueChime:
		return "chime"
	default:
		return "unknown"
	}
}
