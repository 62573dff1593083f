// Package fractal computes Mandelbrot escape-time fields.
//
// A field is an h×w grid of iteration counts sampled from the base rectangle
// [-2.0, 0.8] × [-1.4, 1.4] of the complex plane, scaled by 1/zoom and
// translated by -offset. Every cell is independent, so Engine splits the grid
// into row bands and computes them in parallel.
package fractal
