package fractal

import "github.com/lixenwraith/mandelview/constants"

// Grid maps sample indices onto the complex plane
// Columns span the real axis and rows span the imaginary axis, endpoints inclusive
type Grid struct {
	Width, Height int
	Zoom          float64
	OffsetX       float64
	OffsetY       float64
}

// Real returns the real part of samples in column col
func (g Grid) Real(col int) float64 {
	return span(constants.BaseRealMin, constants.BaseRealMax, g.Width, col)/g.Zoom - g.OffsetX
}

// Imag returns the imaginary part of samples in row row
func (g Grid) Imag(row int) float64 {
	return span(constants.BaseImagMin, constants.BaseImagMax, g.Height, row)/g.Zoom - g.OffsetY
}

// Point returns the complex coordinate of sample (row, col)
func (g Grid) Point(row, col int) complex128 {
	return complex(g.Real(col), g.Imag(row))
}

// span returns the k-th of n evenly spaced values from lo to hi inclusive
// A single sample sits at lo
func span(lo, hi float64, n, k int) float64 {
	if n <= 1 {
		return lo
	}
	return lo + float64(k)*(hi-lo)/float64(n-1)
}
