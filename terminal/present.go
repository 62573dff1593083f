package terminal

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/mandelview/render"
)

// halfBlock shows foreground in the top half of a cell and background in the bottom half
const halfBlock = '▀'

// layout is the placement of the scaled frame in the cell grid
type layout struct {
	side  int // scaled square side in pixels, even
	cellX int // left column
	cellY int // top row
}

// fitSquare returns the largest centred square of pixels for a cols×rows grid, two pixels per row
func fitSquare(cols, rows int) layout {
	side := min(cols, rows*2)
	side &^= 1
	if side <= 0 {
		return layout{}
	}
	return layout{
		side:  side,
		cellX: (cols - side) / 2,
		cellY: (rows - side/2) / 2,
	}
}

// Present implements engine.Backend
func (b *Backend) Present(frame *render.Frame) error {
	cols, rows := b.screen.Size()
	if cols != b.cols || rows != b.rows {
		b.cols, b.rows = cols, rows
		b.screen.Clear()
	}

	l := fitSquare(cols, rows)
	if l.side == 0 {
		b.screen.Show()
		return nil
	}

	if b.scaled == nil || b.scaled.Bounds().Dx() != l.side {
		b.scaled = image.NewRGBA(image.Rect(0, 0, l.side, l.side))
	}
	draw.NearestNeighbor.Scale(b.scaled, b.scaled.Bounds(), frame, frame.Bounds(), draw.Src, nil)

	for cy := 0; cy < l.side/2; cy++ {
		for x := 0; x < l.side; x++ {
			top := b.scaled.RGBAAt(x, cy*2)
			bottom := b.scaled.RGBAAt(x, cy*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			b.screen.SetContent(l.cellX+x, l.cellY+cy, halfBlock, nil, style)
		}
	}

	b.screen.Show()
	return nil
}
