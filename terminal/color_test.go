package terminal

import (
	"errors"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorModeAuto, false},
		{"auto", ColorModeAuto, false},
		{"truecolor", ColorModeTrueColor, false},
		{"24bit", ColorModeTrueColor, false},
		{"TRUE", ColorModeTrueColor, false},
		{"256", ColorMode256, false},
		{"16", ColorModeAuto, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownColorMode) {
				t.Errorf("ParseColorMode(%q): expected ErrUnknownColorMode, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func clearColorEnv(t *testing.T) {
	for _, k := range []string{
		"COLORTERM", "TERM", "KITTY_WINDOW_ID", "KONSOLE_VERSION",
		"ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE",
	} {
		t.Setenv(k, "")
	}
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{"COLORTERM truecolor", map[string]string{"COLORTERM": "truecolor"}, ColorModeTrueColor},
		{"Kitty", map[string]string{"KITTY_WINDOW_ID": "1"}, ColorModeTrueColor},
		{"TERM direct", map[string]string{"TERM": "xterm-direct"}, ColorModeTrueColor},
		{"Plain xterm", map[string]string{"TERM": "xterm-256color"}, ColorMode256},
		{"Empty", nil, ColorMode256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearColorEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := DetectColorMode(); got != tt.want {
				t.Errorf("DetectColorMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveKeepsExplicitMode(t *testing.T) {
	clearColorEnv(t)
	if got := ColorMode256.Resolve(); got != ColorMode256 {
		t.Errorf("Resolve changed explicit 256 to %v", got)
	}
	if got := ColorModeTrueColor.Resolve(); got != ColorModeTrueColor {
		t.Errorf("Resolve changed explicit truecolor to %v", got)
	}
	if got := ColorModeAuto.Resolve(); got != ColorMode256 {
		t.Errorf("Auto with empty environment resolved to %v", got)
	}
}
