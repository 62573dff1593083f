package terminal

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mandelview/constants"
	"github.com/lixenwraith/mandelview/input"
)

// ErrScreenClosed is returned by Poll once the screen stopped delivering events
var ErrScreenClosed = errors.New("terminal screen closed")

// Backend is a tcell display implementing engine.Backend
type Backend struct {
	screen tcell.Screen
	keys   *input.KeyTable
	hold   *input.KeyTracker
	now    func() time.Time
	log    logrus.FieldLogger

	events chan tcell.Event
	done   chan struct{}
	lost   chan struct{}

	// Edge-triggered input accumulated between polls
	pending input.State

	// Presentation scratch, reallocated when the cell grid changes
	scaled     *image.RGBA
	cols, rows int

	closeOnce sync.Once
}

// Option configures a Backend
type Option func(*Backend)

// WithKeyTable replaces the default bindings
func WithKeyTable(kt *input.KeyTable) Option {
	return func(b *Backend) {
		if kt != nil {
			b.keys = kt
		}
	}
}

// WithClock replaces the clock used for key-hold expiry
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		if now != nil {
			b.now = now
		}
	}
}

// WithLogger sets the backend logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Backend) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates a backend on the controlling terminal
func New(mode ColorMode, opts ...Option) (*Backend, error) {
	applyColorMode(mode.Resolve())

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen, opts...)
}

// NewWithScreen initialises screen and starts the event reader
// Tests pass a tcell simulation screen
func NewWithScreen(screen tcell.Screen, opts ...Option) (*Backend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	b := &Backend{
		screen: screen,
		keys:   input.DefaultKeyTable(),
		hold:   input.NewKeyTracker(constants.KeyRepeatDelay, constants.KeyHoldWindow),
		now:    time.Now,
		log:    discard,
		events: make(chan tcell.Event, constants.EventQueueSize),
		done:   make(chan struct{}),
		lost:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	go b.readEvents()
	return b, nil
}

// readEvents forwards screen events to the tick loop
func (b *Backend) readEvents() {
	defer close(b.lost)
	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := b.screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.done:
			return
		}
	}
}

// Size implements engine.Backend; the frame is always the logical surface
func (b *Backend) Size() (width, height int) {
	return constants.SurfaceWidth, constants.SurfaceHeight
}

// Poll implements engine.Backend
// Drains queued events without blocking, then adds pan keys still inside their hold window
func (b *Backend) Poll() (input.State, error) {
	now := b.now()

drain:
	for {
		select {
		case ev := <-b.events:
			b.handleEvent(ev, now)
		default:
			break drain
		}
	}

	state := b.pending
	b.pending = input.State{}
	b.hold.Fill(&state, now)

	if !state.Quit {
		select {
		case <-b.lost:
			select {
			case <-b.done:
			default:
				return state, ErrScreenClosed
			}
		default:
		}
	}
	return state, nil
}

func (b *Backend) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		b.handleKey(ev.Key(), ev.Rune(), now)

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			b.pending.WheelUp++
		}
		if buttons&tcell.WheelDown != 0 {
			b.pending.WheelDown++
		}

	case *tcell.EventResize:
		b.screen.Sync()
		cols, rows := ev.Size()
		b.log.WithFields(logrus.Fields{"cols": cols, "rows": rows}).Debug("terminal resized")
	}
}

func (b *Backend) handleKey(key tcell.Key, r rune, now time.Time) {
	entry := b.keys.Lookup(key, r)
	switch entry.Intent {
	case input.IntentQuit:
		b.pending.Quit = true
	case input.IntentPan:
		b.hold.Press(entry.Direction, now)
	}
}

// Close implements engine.Backend
func (b *Backend) Close() error {
	b.closeOnce.Do(func() {
		close(b.done)
		b.screen.Fini()
	})
	return nil
}
