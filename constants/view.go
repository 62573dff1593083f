package constants

import "time"

// Surface
const (
	// SurfaceWidth is the logical width of the drawable surface in pixels
	SurfaceWidth = 800

	// SurfaceHeight is the logical height of the drawable surface in pixels
	SurfaceHeight = 800

	// WindowTitle is shown by backends that own a real window
	WindowTitle = "Mandelbrot Fractal Viewer"
)

// Escape-time computation
const (
	// MaxIter is the iteration cap; points still bounded after MaxIter iterations report MaxIter
	MaxIter = 100

	// EscapeRadiusSq is the squared escape radius (|z| > 2)
	EscapeRadiusSq = 4.0

	// Base rectangle shown at zoom 1, offset 0
	BaseRealMin = -2.0
	BaseRealMax = 0.8
	BaseImagMin = -1.4
	BaseImagMax = 1.4
)

// Loop timing
const (
	// TicksPerSecond is the fixed controller tick rate
	TicksPerSecond = 30

	// TickInterval is the duration of one controller tick (~33ms)
	TickInterval = time.Second / TicksPerSecond

	// RevealDelay is the extra wait after a tick while idle and mid-sweep
	RevealDelay = 20 * time.Millisecond
)

// View dynamics, all per tick at TicksPerSecond
const (
	// ZoomSmoothing is the fraction of the remaining zoom distance covered each tick
	ZoomSmoothing = 0.1

	// ZoomEpsilon is the distance below which zoom snaps to its target
	ZoomEpsilon = 0.01

	// ZoomInFactor multiplies the target zoom on wheel up
	ZoomInFactor = 1.1

	// ZoomOutFactor multiplies the target zoom on wheel down
	ZoomOutFactor = 0.9

	// PanStep is the per-tick pan distance at zoom 1, divided by the current zoom
	PanStep = 0.1
)

// Progressive refinement
const (
	// QualityMin is the coarsest quality level (1/8 resolution)
	QualityMin = 1

	// QualityMax is the finest quality level (full resolution)
	QualityMax = 4

	// RevealIncrement is how far the sweep line advances each idle tick
	RevealIncrement = 0.02
)

// Terminal input
const (
	// KeyRepeatDelay is how long a fresh key press counts as held while the terminal waits to auto-repeat
	KeyRepeatDelay = 500 * time.Millisecond

	// KeyHoldWindow is how long a key counts as held after an auto-repeat event
	KeyHoldWindow = 200 * time.Millisecond

	// EventQueueSize is the capacity of the backend event channel
	EventQueueSize = 256
)
