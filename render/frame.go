package render

import (
	"image"
	"image/color"
)

// Frame is a row-major RGB pixel buffer, three bytes per pixel
// It implements image.Image so backends can scale or encode it directly
type Frame struct {
	Width, Height int
	Pix           []uint8
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Clear resets every pixel to the background colour
func (f *Frame) Clear() {
	clear(f.Pix)
}

// Set writes one pixel; out-of-bounds writes are ignored
func (f *Frame) Set(x, y int, c RGB) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 3
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = c.R, c.G, c.B
}

// RGBAt returns one pixel; out-of-bounds reads return black
func (f *Frame) RGBAt(x, y int) RGB {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return RGBBlack
	}
	i := (y*f.Width + x) * 3
	return RGB{f.Pix[i], f.Pix[i+1], f.Pix[i+2]}
}

// Row returns the backing bytes of row y
func (f *Frame) Row(y int) []uint8 {
	return f.Pix[y*f.Width*3 : (y+1)*f.Width*3]
}

// ColorModel implements image.Image
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// At implements image.Image
func (f *Frame) At(x, y int) color.Color {
	c := f.RGBAt(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// CopyRGBA expands the frame into opaque RGBA bytes; dst must hold Width*Height*4 bytes
func (f *Frame) CopyRGBA(dst []uint8) {
	for i, j := 0, 0; i < len(f.Pix); i, j = i+3, j+4 {
		dst[j] = f.Pix[i]
		dst[j+1] = f.Pix[i+1]
		dst[j+2] = f.Pix[i+2]
		dst[j+3] = 0xff
	}
}
