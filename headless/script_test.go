package headless

import (
	"errors"
	"testing"

	"github.com/lixenwraith/mandelview/input"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []Step
		wantErr error
	}{
		{
			name: "Mixed steps",
			in:   "wheelup:3,right:10,idle:200",
			want: []Step{{ActionWheelUp, 3}, {ActionRight, 10}, {ActionIdle, 200}},
		},
		{
			name: "Implicit single tick and spacing",
			in:   " up , WheelDown:2 ,",
			want: []Step{{ActionUp, 1}, {ActionWheelDown, 2}},
		},
		{name: "Empty", in: "", want: nil},
		{name: "Unknown action", in: "idle:2,jump:3", wantErr: ErrUnknownAction},
		{name: "Zero ticks", in: "left:0", wantErr: ErrBadTicks},
		{name: "Negative ticks", in: "left:-4", wantErr: ErrBadTicks},
		{name: "Non-numeric ticks", in: "down:lots", wantErr: ErrBadTicks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScript(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Step %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestScriptNext verifies one state per tick in step order, then exhaustion
func TestScriptNext(t *testing.T) {
	s := NewScript([]Step{{ActionWheelUp, 2}, {ActionLeft, 1}, {ActionIdle, 1}})
	if s.Ticks() != 4 {
		t.Errorf("Ticks() = %d, want 4", s.Ticks())
	}

	check := func(tick int, ok bool, st input.State, want input.State) {
		t.Helper()
		if !ok {
			t.Fatalf("Tick %d: script ended early", tick)
		}
		if st != want {
			t.Errorf("Tick %d: got %+v, want %+v", tick, st, want)
		}
	}

	var left input.State
	left.Hold(input.DirLeft)

	st, ok := s.Next()
	check(1, ok, st, input.State{WheelUp: 1})
	st, ok = s.Next()
	check(2, ok, st, input.State{WheelUp: 1})
	st, ok = s.Next()
	check(3, ok, st, left)
	st, ok = s.Next()
	check(4, ok, st, input.State{})

	if _, ok := s.Next(); ok {
		t.Error("Expected script exhausted")
	}
	if _, ok := s.Next(); ok {
		t.Error("Expected script to stay exhausted")
	}
}

func TestActionString(t *testing.T) {
	for name, a := range actionNames {
		if a.String() != name {
			t.Errorf("Action %d String() = %q, want %q", a, a.String(), name)
		}
	}
}
