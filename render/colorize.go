package render

import "github.com/lixenwraith/mandelview/fractal"

// SweepRows returns how many field rows are revealed at the given progress
func SweepRows(height int, reveal float64) int {
	rows := int(float64(height) * reveal)
	return max(0, min(rows, height))
}

// Colorize paints a field into dst, revealing rows above the sweep line and
// blowing every sample up into a scale×scale block
// Rows at or past the sweep line and any area the scaled field does not cover stay black
func Colorize(field fractal.Field, reveal float64, scale int, dst *Frame) {
	dst.Clear()
	if field.Empty() || scale < 1 {
		return
	}

	sweep := SweepRows(field.Height, reveal)
	span := min(field.Width*scale, dst.Width)
	line := make([]uint8, span*3)

	for row := 0; row < sweep; row++ {
		top := row * scale
		if top >= dst.Height {
			break
		}

		// Expand one field row horizontally
		values := field.Row(row)
		for x := 0; x < span; x++ {
			c := Band(values[x/scale])
			line[x*3], line[x*3+1], line[x*3+2] = c.R, c.G, c.B
		}

		// Replicate it vertically
		bottom := min(top+scale, dst.Height)
		for y := top; y < bottom; y++ {
			copy(dst.Row(y), line)
		}
	}
}
