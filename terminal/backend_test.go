package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mandelview/constants"
	"github.com/lixenwraith/mandelview/input"
	"github.com/lixenwraith/mandelview/render"
)

var (
	red  = render.RGB{R: 255}
	blue = render.RGB{B: 255}
)

func newSimBackend(t *testing.T, cols, rows int, opts ...Option) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	b, err := NewWithScreen(screen, opts...)
	if err != nil {
		t.Fatalf("NewWithScreen failed: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(func() { b.Close() })
	return b, screen
}

// pollUntil polls until cond holds for the accumulated state or the deadline passes
func pollUntil(t *testing.T, b *Backend, cond func(input.State) bool) input.State {
	t.Helper()
	var acc input.State
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		st, err := b.Poll()
		if err != nil {
			t.Fatalf("Poll failed: %v", err)
		}
		acc.Quit = acc.Quit || st.Quit
		acc.WheelUp += st.WheelUp
		acc.WheelDown += st.WheelDown
		if cond(acc) {
			return acc
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Condition not met before deadline, accumulated %+v", acc)
	return acc
}

func cellColors(t *testing.T, screen tcell.SimulationScreen, x, y int) (rune, render.RGB, render.RGB) {
	t.Helper()
	r, _, style, _ := screen.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	fr, fgG, fb := fg.RGB()
	br, bgG, bb := bg.RGB()
	return r,
		render.RGB{R: uint8(fr), G: uint8(fgG), B: uint8(fb)},
		render.RGB{R: uint8(br), G: uint8(bgG), B: uint8(bb)}
}

func TestFitSquare(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		want       layout
	}{
		{"Wide grid", 60, 20, layout{side: 40, cellX: 10, cellY: 0}},
		{"Tall grid", 40, 40, layout{side: 40, cellX: 0, cellY: 10}},
		{"Odd width", 41, 10, layout{side: 20, cellX: 10, cellY: 0}},
		{"Odd side rounds down", 7, 3, layout{side: 6, cellX: 0, cellY: 0}},
		{"No columns", 0, 10, layout{}},
		{"Single cell", 1, 1, layout{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitSquare(tt.cols, tt.rows); got != tt.want {
				t.Errorf("fitSquare(%d, %d) = %+v, want %+v", tt.cols, tt.rows, got, tt.want)
			}
		})
	}
}

// TestPresentHalfBlocks verifies two pixel rows per cell, centred in the grid
func TestPresentHalfBlocks(t *testing.T) {
	b, screen := newSimBackend(t, 60, 20)

	// Red above row 420, blue below; at 40 pixels the split lands inside cell row 10
	frame := render.NewFrame(constants.SurfaceWidth, constants.SurfaceHeight)
	for y := 0; y < frame.Height; y++ {
		c := blue
		if y < 420 {
			c = red
		}
		for x := 0; x < frame.Width; x++ {
			frame.Set(x, y, c)
		}
	}

	if err := b.Present(frame); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	tests := []struct {
		name   string
		x, y   int
		fg, bg render.RGB
	}{
		{"Top left", 10, 0, red, red},
		{"Split row", 10, 10, red, blue},
		{"Bottom right", 49, 19, blue, blue},
	}
	for _, tt := range tests {
		r, fg, bg := cellColors(t, screen, tt.x, tt.y)
		if r != halfBlock {
			t.Errorf("%s: rune %q, want half block", tt.name, r)
		}
		if fg != tt.fg || bg != tt.bg {
			t.Errorf("%s: fg %v bg %v, want fg %v bg %v", tt.name, fg, bg, tt.fg, tt.bg)
		}
	}

	// Columns outside the centred square stay empty
	for _, x := range []int{0, 9, 50, 59} {
		if r, _, _, _ := screen.GetContent(x, 5); r == halfBlock {
			t.Errorf("Column %d outside the square was drawn", x)
		}
	}
}

func TestPresentTinyGrid(t *testing.T) {
	b, _ := newSimBackend(t, 1, 1)
	if err := b.Present(render.NewFrame(constants.SurfaceWidth, constants.SurfaceHeight)); err != nil {
		t.Errorf("Present on a 1x1 grid failed: %v", err)
	}
}

func TestSizeIsSurface(t *testing.T) {
	b, _ := newSimBackend(t, 60, 20)
	w, h := b.Size()
	if w != constants.SurfaceWidth || h != constants.SurfaceHeight {
		t.Errorf("Size() = %dx%d, want surface size", w, h)
	}
}

func TestPollWheelNotches(t *testing.T) {
	b, screen := newSimBackend(t, 60, 20)

	screen.InjectMouse(20, 10, tcell.WheelUp, tcell.ModNone)
	screen.InjectMouse(20, 10, tcell.WheelUp, tcell.ModNone)
	screen.InjectMouse(20, 10, tcell.WheelDown, tcell.ModNone)

	st := pollUntil(t, b, func(s input.State) bool {
		return s.WheelUp >= 2 && s.WheelDown >= 1
	})
	if st.WheelUp != 2 || st.WheelDown != 1 {
		t.Errorf("Expected 2 up and 1 down notch, got %+v", st)
	}
}

func TestPollQuitKey(t *testing.T) {
	b, screen := newSimBackend(t, 60, 20)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	pollUntil(t, b, func(s input.State) bool { return s.Quit })
}

// TestPollKeyHoldExpires verifies a pan key stays held through the repeat delay and expires without repeats
func TestPollKeyHoldExpires(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	b, _ := newSimBackend(t, 60, 20, WithClock(func() time.Time { return now }))

	b.handleKey(tcell.KeyRight, 0, start)
	b.handleKey(tcell.KeyRune, 'k', start)

	// Still waiting for the terminal to start auto-repeat
	now = start.Add(constants.KeyRepeatDelay - time.Millisecond)
	st, err := b.Poll()
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if !st.IsHeld(input.DirRight) || !st.IsHeld(input.DirUp) {
		t.Errorf("Expected right and up held before first repeat, got %+v", st)
	}
	if st.IsHeld(input.DirLeft) || st.IsHeld(input.DirDown) {
		t.Errorf("Unexpected held keys: %+v", st)
	}

	// Auto-repeat refreshes the hold
	b.handleKey(tcell.KeyRight, 0, now)

	now = start.Add(constants.KeyRepeatDelay + time.Millisecond)
	st, _ = b.Poll()
	if !st.IsHeld(input.DirRight) {
		t.Error("Expected repeated key still held")
	}
	if st.IsHeld(input.DirUp) {
		t.Error("Expected up released after repeat delay")
	}

	now = start.Add(constants.KeyRepeatDelay + constants.KeyHoldWindow)
	st, _ = b.Poll()
	if st.IsHeld(input.DirRight) {
		t.Error("Expected right released once repeats stop")
	}
}

func TestPollEdgeInputIsConsumed(t *testing.T) {
	b, _ := newSimBackend(t, 60, 20)

	b.pending.WheelUp = 3
	b.pending.Quit = true

	st, _ := b.Poll()
	if st.WheelUp != 3 || !st.Quit {
		t.Fatalf("Expected pending input delivered, got %+v", st)
	}

	st, _ = b.Poll()
	if st.WheelUp != 0 || st.Quit {
		t.Errorf("Expected pending input cleared, got %+v", st)
	}
}

func TestCloseIdempotent(t *testing.T) {
	b, _ := newSimBackend(t, 60, 20)
	if err := b.Close(); err != nil {
		t.Errorf("First Close failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("Second Close failed: %v", err)
	}
}
