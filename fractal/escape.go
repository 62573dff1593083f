package fractal

import "github.com/lixenwraith/mandelview/constants"

// Escape iterates z ← z² + c from z = c and returns the first iteration index
// at which |z|² exceeds 4, or maxIter if it never does
func Escape(cx, cy float64, maxIter int) int {
	x, y := cx, cy
	for i := 0; i < maxIter; i++ {
		x, y = x*x-y*y+cx, 2*x*y+cy
		if x*x+y*y > constants.EscapeRadiusSq {
			return i
		}
	}
	return maxIter
}
