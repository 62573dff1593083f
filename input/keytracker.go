package input

import "time"

// KeyTracker emulates key-held state for backends that only report presses
// Terminals deliver a press, pause for their repeat delay, then send auto-repeat presses
// while the key is down. A fresh press is held for the initial window so the pause
// does not read as a release; once repeats arrive the shorter repeat window applies
type KeyTracker struct {
	initial   time.Duration
	repeat    time.Duration
	last      [dirCount]time.Time
	repeating [dirCount]bool
}

// NewKeyTracker creates a tracker holding fresh presses for initial and repeats for repeat
func NewKeyTracker(initial, repeat time.Duration) *KeyTracker {
	return &KeyTracker{initial: initial, repeat: repeat}
}

// Press records a press or repeat of a pan key
// A press arriving while the key is still held counts as an auto-repeat
func (kt *KeyTracker) Press(d Direction, now time.Time) {
	if d >= dirCount {
		return
	}
	kt.repeating[d] = kt.Held(d, now)
	kt.last[d] = now
}

// Release forgets a pan key immediately
func (kt *KeyTracker) Release(d Direction) {
	if d < dirCount {
		kt.last[d] = time.Time{}
		kt.repeating[d] = false
	}
}

// Held reports whether the key was pressed within its current hold window
func (kt *KeyTracker) Held(d Direction, now time.Time) bool {
	if d >= dirCount || kt.last[d].IsZero() {
		return false
	}
	window := kt.initial
	if kt.repeating[d] {
		window = kt.repeat
	}
	return now.Sub(kt.last[d]) < window
}

// Fill marks every held key in s
func (kt *KeyTracker) Fill(s *State, now time.Time) {
	for d := Direction(0); d < dirCount; d++ {
		if kt.Held(d, now) {
			s.Hold(d)
		}
	}
}
