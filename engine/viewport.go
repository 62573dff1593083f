package engine

import (
	"math"

	"github.com/lixenwraith/mandelview/constants"
	"github.com/lixenwraith/mandelview/input"
)

// Viewport is the current view of the complex plane
// Zoom and TargetZoom stay strictly positive; offsets are in fractal-plane units
type Viewport struct {
	Zoom       float64
	TargetZoom float64
	OffsetX    float64
	OffsetY    float64
}

// NewViewport returns the base view: zoom 1, no offset
func NewViewport() Viewport {
	return Viewport{Zoom: 1, TargetZoom: 1}
}

// Smooth moves Zoom a fixed fraction toward TargetZoom, snapping once within ZoomEpsilon
// Returns true if the zoom was still converging this tick
func (v *Viewport) Smooth() bool {
	if math.Abs(v.Zoom-v.TargetZoom) > constants.ZoomEpsilon {
		v.Zoom += (v.TargetZoom - v.Zoom) * constants.ZoomSmoothing
		return true
	}
	v.Zoom = v.TargetZoom
	return false
}

// ZoomWheel applies wheel notches to the target zoom
func (v *Viewport) ZoomWheel(up, down int) {
	for i := 0; i < up; i++ {
		v.TargetZoom *= constants.ZoomInFactor
	}
	for i := 0; i < down; i++ {
		v.TargetZoom *= constants.ZoomOutFactor
	}
}

// Pan shifts the offset for each held key by PanStep/Zoom so on-screen speed is zoom independent
func (v *Viewport) Pan(in input.State) {
	step := constants.PanStep / v.Zoom
	if in.IsHeld(input.DirUp) {
		v.OffsetY -= step
	}
	if in.IsHeld(input.DirDown) {
		v.OffsetY += step
	}
	if in.IsHeld(input.DirLeft) {
		v.OffsetX -= step
	}
	if in.IsHeld(input.DirRight) {
		v.OffsetX += step
	}
}
