package input

// Direction identifies one of the four pan keys
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	dirCount
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// State is the input observed during one tick
// Pan keys are level-triggered (held or not); wheel notches and quit are edge-triggered
type State struct {
	Quit      bool
	WheelUp   int
	WheelDown int
	Held      [dirCount]bool
}

// Hold marks a pan key as held
func (s *State) Hold(d Direction) {
	if d < dirCount {
		s.Held[d] = true
	}
}

// IsHeld reports whether a pan key is held
func (s State) IsHeld(d Direction) bool {
	return d < dirCount && s.Held[d]
}

// Panning reports whether any pan key is held
func (s State) Panning() bool {
	for _, h := range s.Held {
		if h {
			return true
		}
	}
	return false
}

// Zooming reports whether any wheel notch arrived this tick
func (s State) Zooming() bool {
	return s.WheelUp > 0 || s.WheelDown > 0
}

// Active reports whether this tick carries view-changing input
func (s State) Active() bool {
	return s.Panning() || s.Zooming()
}
