package render

// RGB is an 8-bit per channel colour
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the background colour of unrevealed rows and unused surface area
var RGBBlack = RGB{0, 0, 0}
