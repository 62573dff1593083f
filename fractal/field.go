package fractal

// Field holds escape iteration counts in row-major order
// A value equal to MaxIter marks a sample that stayed bounded
type Field struct {
	Width, Height int
	MaxIter       int
	Values        []int
}

// NewField allocates a zeroed field; non-positive dimensions yield an empty field
func NewField(height, width, maxIter int) Field {
	if height <= 0 || width <= 0 {
		return Field{MaxIter: maxIter}
	}
	return Field{
		Width:   width,
		Height:  height,
		MaxIter: maxIter,
		Values:  make([]int, width*height),
	}
}

// At returns the escape value of sample (row, col)
func (f Field) At(row, col int) int {
	return f.Values[row*f.Width+col]
}

// Row returns the backing slice of one row
func (f Field) Row(row int) []int {
	return f.Values[row*f.Width : (row+1)*f.Width]
}

// Empty reports whether the field has no samples
func (f Field) Empty() bool {
	return len(f.Values) == 0
}

// Bounded reports whether sample (row, col) never escaped
func (f Field) Bounded(row, col int) bool {
	return f.At(row, col) == f.MaxIter
}
