package terminal

import (
	"io"
	"os"
)

var (
	seqMouseOff     = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
	seqCursorShow   = []byte("\x1b[?25h")
	seqAltScreenOff = []byte("\x1b[?1049l")
	seqSGR0         = []byte("\x1b[0m")
	seqAutoWrapOn   = []byte("\x1b[?7h")
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Close cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(seqMouseOff)
	w.Write(seqCursorShow)
	w.Write(seqAltScreenOff)
	w.Write(seqSGR0)
	w.Write(seqAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
