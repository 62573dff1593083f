package headless

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/mandelview/input"
)

var (
	// ErrUnknownAction is returned for script steps naming no known action
	ErrUnknownAction = errors.New("unknown script action")

	// ErrBadTicks is returned for a tick count that is not a positive integer
	ErrBadTicks = errors.New("invalid script tick count")
)

// Action is one scripted input kind
type Action uint8

const (
	ActionIdle Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionWheelUp
	ActionWheelDown
)

var actionNames = map[string]Action{
	"idle":      ActionIdle,
	"up":        ActionUp,
	"down":      ActionDown,
	"left":      ActionLeft,
	"right":     ActionRight,
	"wheelup":   ActionWheelUp,
	"wheeldown": ActionWheelDown,
}

// String returns the script spelling of the action
func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "unknown"
}

// Step repeats an action for a number of ticks
type Step struct {
	Action Action
	Ticks  int
}

// state returns the input of one tick of this step
func (s Step) state() input.State {
	var st input.State
	switch s.Action {
	case ActionUp:
		st.Hold(input.DirUp)
	case ActionDown:
		st.Hold(input.DirDown)
	case ActionLeft:
		st.Hold(input.DirLeft)
	case ActionRight:
		st.Hold(input.DirRight)
	case ActionWheelUp:
		st.WheelUp = 1
	case ActionWheelDown:
		st.WheelDown = 1
	}
	return st
}

// ParseScript parses "action:ticks" steps separated by commas
// A step without ":ticks" lasts one tick; blank steps are ignored
func ParseScript(s string) ([]Step, error) {
	var steps []Step
	for i, raw := range strings.Split(s, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		name, count, hasCount := strings.Cut(raw, ":")
		action, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("step %d: %w: %q", i+1, ErrUnknownAction, name)
		}

		ticks := 1
		if hasCount {
			n, err := strconv.Atoi(strings.TrimSpace(count))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("step %d: %w: %q", i+1, ErrBadTicks, count)
			}
			ticks = n
		}
		steps = append(steps, Step{Action: action, Ticks: ticks})
	}
	return steps, nil
}

// Script replays steps one tick at a time
type Script struct {
	steps []Step
	step  int
	tick  int
}

// NewScript creates a player for steps
func NewScript(steps []Step) *Script {
	return &Script{steps: steps}
}

// Next returns the input for the next tick, or false once the script is exhausted
func (s *Script) Next() (input.State, bool) {
	for s.step < len(s.steps) {
		cur := s.steps[s.step]
		if s.tick < cur.Ticks {
			s.tick++
			return cur.state(), true
		}
		s.step++
		s.tick = 0
	}
	return input.State{}, false
}

// Ticks returns the total scripted tick count
func (s *Script) Ticks() int {
	total := 0
	for _, st := range s.steps {
		total += st.Ticks
	}
	return total
}
