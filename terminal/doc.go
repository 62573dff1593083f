// Package terminal presents frames in a tcell screen and turns key and mouse events into per-tick input.
//
// The surface is scaled into the largest centred square that fits the cell grid.
// Each cell shows two pixels stacked vertically with the upper-half-block rune:
// foreground is the upper pixel, background the lower one.
package terminal
