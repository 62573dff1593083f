// Package headless drives the viewer without a display.
// Input comes from a script of action:ticks steps and presented frames are written as PNG files.
package headless
