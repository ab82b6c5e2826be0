package sim

import "image/color"

// Display values produced by Trial.Cells.
const (
	CellDirty uint8 = iota
	CellClean
	CellWall
)

var palette = []color.RGBA{
	CellDirty: {R: 120, G: 92, B: 60, A: 255},
	CellClean: {R: 225, G: 225, B: 215, A: 255},
	CellWall:  {R: 40, G: 40, B: 48, A: 255},
}

// Palette maps display values to colors.
func (t *Trial) Palette() []color.RGBA { return palette }

// Cells returns the display value of every tile in row-major order. The
// returned slice is reused between calls.
func (t *Trial) Cells() []uint8 {
	w, h := t.room.Width(), t.room.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := CellDirty
			switch {
			case t.room.IsOccupied(x, y):
				v = CellWall
			case t.room.IsCleaned(x, y):
				v = CellClean
			}
			t.display[y*w+x] = v
		}
	}
	return t.display
}
