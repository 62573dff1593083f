package engine

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mandelview/constants"
	"github.com/lixenwraith/mandelview/fractal"
	"github.com/lixenwraith/mandelview/input"
	"github.com/lixenwraith/mandelview/render"
)

// Controller owns the view, the refinement state and the frame buffer
// It is driven by a single goroutine, one tick at a time:
// Advance, Render, ApplyInput, then PostTickDelay for pacing
type Controller struct {
	view  Viewport
	state RenderState

	width, height int
	maxIter       int

	engine    *fractal.Engine
	frame     *render.Frame
	observers []Observer
	log       logrus.FieldLogger

	// Last values reported to observers
	lastPhase   Phase
	lastQuality int
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithEngine replaces the default escape-time engine
func WithEngine(e *fractal.Engine) ControllerOption {
	return func(c *Controller) {
		if e != nil {
			c.engine = e
		}
	}
}

// WithObserver registers observers for quality and phase changes
func WithObserver(obs ...Observer) ControllerOption {
	return func(c *Controller) {
		c.observers = append(c.observers, obs...)
	}
}

// WithLogger sets the controller logger
func WithLogger(l logrus.FieldLogger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMaxIter overrides the iteration cap
func WithMaxIter(n int) ControllerOption {
	return func(c *Controller) {
		if n > 0 {
			c.maxIter = n
		}
	}
}

// NewController creates a controller for a width×height surface at the base view
func NewController(width, height int, opts ...ControllerOption) *Controller {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Controller{
		view:    NewViewport(),
		state:   NewRenderState(),
		width:   width,
		height:  height,
		maxIter: constants.MaxIter,
		frame:   render.NewFrame(width, height),
		log:     discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.engine == nil {
		c.engine = fractal.NewEngine(fractal.WithLogger(c.log))
	}

	c.lastPhase = c.Phase()
	c.lastQuality = c.state.Quality
	return c
}

// View returns a copy of the viewport
func (c *Controller) View() Viewport {
	return c.view
}

// State returns a copy of the render state
func (c *Controller) State() RenderState {
	return c.state
}

// Phase returns the current refinement phase
// A zoom still converging on its target counts as moving even on ticks without input
func (c *Controller) Phase() Phase {
	if c.view.Zoom != c.view.TargetZoom {
		return PhaseMoving
	}
	return c.state.Phase()
}

// Size returns the surface dimensions
func (c *Controller) Size() (width, height int) {
	return c.width, c.height
}

// Advance runs zoom smoothing and quality/reveal scheduling for this tick
// Moving carries over from the previous tick's input and is also set while zoom converges
func (c *Controller) Advance() {
	if c.view.Smooth() {
		c.state.Moving = true
	}
	c.state.Schedule()
	c.notify()
}

// Render computes the field at the current quality and paints it into the frame
// The returned frame is reused by the next call
func (c *Controller) Render() *render.Frame {
	scale := c.state.Scale()
	field := c.engine.Compute(
		c.height/scale,
		c.width/scale,
		c.maxIter,
		c.view.Zoom,
		c.view.OffsetX,
		c.view.OffsetY,
	)
	render.Colorize(field, c.state.Reveal, scale, c.frame)
	return c.frame
}

// ApplyInput consumes this tick's input and reports whether the viewer should quit
// Any pan or zoom input marks the view as moving and drops back to the coarsest level
func (c *Controller) ApplyInput(in input.State) (quit bool) {
	c.state.Moving = false

	if in.Zooming() {
		c.view.ZoomWheel(in.WheelUp, in.WheelDown)
		c.resetToMoving()
	}

	if in.Panning() {
		c.resetToMoving()
		c.view.Pan(in)
	}

	c.notify()
	return in.Quit
}

// PostTickDelay returns the extra wait that slows the reveal sweep while idle
func (c *Controller) PostTickDelay() time.Duration {
	if !c.state.Moving && c.state.Reveal < 1.0 {
		return constants.RevealDelay
	}
	return 0
}

func (c *Controller) resetToMoving() {
	c.state.Moving = true
	c.state.Quality = constants.QualityMin
	c.state.Reveal = 1.0
}

// notify reports quality and phase changes since the last call
func (c *Controller) notify() {
	quality := c.state.Quality
	phase := c.Phase()

	if quality != c.lastQuality {
		for _, o := range c.observers {
			o.QualityChanged(c.lastQuality, quality)
		}
		c.lastQuality = quality
	}

	if phase != c.lastPhase {
		if !CanTransition(c.lastPhase, phase) {
			c.log.WithFields(logrus.Fields{
				"from": c.lastPhase,
				"to":   phase,
			}).Warn("unexpected phase transition")
		}
		for _, o := range c.observers {
			o.PhaseChanged(c.lastPhase, phase)
		}
		c.lastPhase = phase
	}
}
