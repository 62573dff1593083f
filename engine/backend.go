package engine

import (
	"github.com/lixenwraith/mandelview/input"
	"github.com/lixenwraith/mandelview/render"
)

//go:generate mockgen -destination=../mocks/mock_engine.go -package=mocks github.com/lixenwraith/mandelview/engine Backend,Pacer

// Backend is the display and input collaborator of the run loop
type Backend interface {
	// Size returns the surface dimensions in pixels
	Size() (width, height int)

	// Poll returns the input gathered since the previous Poll without blocking
	Poll() (input.State, error)

	// Present displays a full frame matching Size
	Present(frame *render.Frame) error

	// Close releases the display and restores the terminal or window
	Close() error
}
