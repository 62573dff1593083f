package terminal

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrUnknownColorMode is returned by ParseColorMode for unrecognised names
var ErrUnknownColorMode = errors.New("unknown color mode")

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeAuto      ColorMode = iota // detect from environment
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return "auto"
	}
}

// ParseColorMode resolves a flag value: auto, truecolor (true, 24bit) or 256
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorModeAuto, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	default:
		return ColorModeAuto, fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
	}
}

// Resolve replaces ColorModeAuto with the detected mode
func (m ColorMode) Resolve() ColorMode {
	if m == ColorModeAuto {
		return DetectColorMode()
	}
	return m
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// applyColorMode configures tcell before the screen is created
// tcell reads TCELL_TRUECOLOR during Init; in 256 mode it maps RGB to the nearest palette entry
func applyColorMode(m ColorMode) {
	if m == ColorMode256 {
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}
