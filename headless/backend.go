package headless

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mandelview/constants"
	"github.com/lixenwraith/mandelview/input"
	"github.com/lixenwraith/mandelview/render"
)

// Backend is an off-screen engine.Backend
// Every n-th presented frame is written to the output directory; with n == 0 only the last one is
type Backend struct {
	script *Script
	outDir string
	every  int
	log    logrus.FieldLogger

	presented   int
	lastWritten int
	last        *render.Frame
	rgba        *image.RGBA
	written     []string
}

// Option configures a Backend
type Option func(*Backend)

// WithLogger sets the backend logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Backend) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates a headless backend writing into outDir, creating it if needed
func New(steps []Step, outDir string, every int, opts ...Option) (*Backend, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	b := &Backend{
		script: NewScript(steps),
		outDir: outDir,
		every:  max(every, 0),
		log:    discard,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Size implements engine.Backend
func (b *Backend) Size() (width, height int) {
	return constants.SurfaceWidth, constants.SurfaceHeight
}

// Poll implements engine.Backend; the end of the script is a quit
func (b *Backend) Poll() (input.State, error) {
	st, ok := b.script.Next()
	if !ok {
		return input.State{Quit: true}, nil
	}
	return st, nil
}

// Present implements engine.Backend
func (b *Backend) Present(frame *render.Frame) error {
	b.presented++
	b.last = frame

	if b.every > 0 && b.presented%b.every == 0 {
		return b.write(frame)
	}
	return nil
}

// Close writes the last presented frame unless it was already written
func (b *Backend) Close() error {
	if b.last == nil || b.lastWritten == b.presented {
		return nil
	}
	return b.write(b.last)
}

// Written returns the paths of the PNG files written so far
func (b *Backend) Written() []string {
	return append([]string(nil), b.written...)
}

// Presented returns the number of frames presented
func (b *Backend) Presented() int {
	return b.presented
}

func (b *Backend) write(frame *render.Frame) error {
	bounds := frame.Bounds()
	if b.rgba == nil || b.rgba.Bounds() != bounds {
		b.rgba = image.NewRGBA(bounds)
	}
	frame.CopyRGBA(b.rgba.Pix)

	path := filepath.Join(b.outDir, fmt.Sprintf("frame_%05d.png", b.presented))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, b.rgba); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot %s: %w", path, err)
	}

	b.lastWritten = b.presented
	b.written = append(b.written, path)
	b.log.WithField("path", path).Debug("snapshot written")
	return nil
}
