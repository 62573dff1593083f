// Package window shows the viewer in a native window through ebiten.
// ebiten owns the loop, so each Update runs one controller tick.
package window

import (
	"context"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mandelview/constants"
	"github.com/lixenwraith/mandelview/engine"
	"github.com/lixenwraith/mandelview/input"
)

// Game implements ebiten.Game around a controller
type Game struct {
	ctx   context.Context
	ctrl  *engine.Controller
	pacer engine.Pacer
	log   logrus.FieldLogger

	keys    map[ebiten.Key]input.KeyEntry
	pressed func(ebiten.Key) bool
	wheel   func() (float64, float64)
	notches wheelAccumulator

	pix   []byte
	ticks int
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the game logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithPacer replaces the pacer used for the idle reveal delay
// ebiten paces ticks itself, so only Delay is used
func WithPacer(p engine.Pacer) Option {
	return func(g *Game) {
		if p != nil {
			g.pacer = p
		}
	}
}

// DefaultKeys binds arrows and h/j/k/l to panning, Q and Escape to quitting
func DefaultKeys() map[ebiten.Key]input.KeyEntry {
	return map[ebiten.Key]input.KeyEntry{
		ebiten.KeyArrowUp:    {Intent: input.IntentPan, Direction: input.DirUp},
		ebiten.KeyArrowDown:  {Intent: input.IntentPan, Direction: input.DirDown},
		ebiten.KeyArrowLeft:  {Intent: input.IntentPan, Direction: input.DirLeft},
		ebiten.KeyArrowRight: {Intent: input.IntentPan, Direction: input.DirRight},
		ebiten.KeyK:          {Intent: input.IntentPan, Direction: input.DirUp},
		ebiten.KeyJ:          {Intent: input.IntentPan, Direction: input.DirDown},
		ebiten.KeyH:          {Intent: input.IntentPan, Direction: input.DirLeft},
		ebiten.KeyL:          {Intent: input.IntentPan, Direction: input.DirRight},
		ebiten.KeyQ:          {Intent: input.IntentQuit},
		ebiten.KeyEscape:     {Intent: input.IntentQuit},
	}
}

// NewGame creates a game driving c
func NewGame(ctx context.Context, c *engine.Controller, opts ...Option) *Game {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	w, h := c.Size()
	g := &Game{
		ctx:     ctx,
		ctrl:    c,
		pacer:   engine.NewTickPacer(constants.TickInterval),
		log:     discard,
		keys:    DefaultKeys(),
		pressed: ebiten.IsKeyPressed,
		wheel:   ebiten.Wheel,
		pix:     make([]byte, w*h*4),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run opens the window and blocks until it is closed, quit is pressed or ctx is cancelled
func Run(ctx context.Context, c *engine.Controller, opts ...Option) error {
	w, h := c.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(constants.WindowTitle)
	ebiten.SetTPS(constants.TicksPerSecond)

	return ebiten.RunGame(NewGame(ctx, c, opts...))
}

// Update runs one controller tick
func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	g.ctrl.Advance()
	g.ctrl.Render().CopyRGBA(g.pix)
	g.ticks++

	if g.ctrl.ApplyInput(g.poll()) {
		g.log.WithField("ticks", g.ticks).Info("quit requested")
		return ebiten.Termination
	}

	if d := g.ctrl.PostTickDelay(); d > 0 {
		g.pacer.Delay(d)
	}
	return nil
}

// Draw shows the last rendered frame
func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.pix)
}

// Layout keeps the logical surface fixed; ebiten scales it into the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ctrl.Size()
}

// poll samples key state and wheel movement for this tick
func (g *Game) poll() input.State {
	var st input.State
	for key, entry := range g.keys {
		if !g.pressed(key) {
			continue
		}
		switch entry.Intent {
		case input.IntentQuit:
			st.Quit = true
		case input.IntentPan:
			st.Hold(entry.Direction)
		}
	}

	_, dy := g.wheel()
	st.WheelUp, st.WheelDown = g.notches.Add(dy)
	return st
}

// wheelAccumulator turns fractional wheel deltas (touchpads) into whole notches
type wheelAccumulator struct {
	acc float64
}

// Add accumulates dy and returns the complete notches up and down
func (w *wheelAccumulator) Add(dy float64) (up, down int) {
	w.acc += dy
	for w.acc >= 1 {
		up++
		w.acc--
	}
	for w.acc <= -1 {
		down++
		w.acc++
	}
	return up, down
}
