package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Cells
// are stored with row 0 at the south wall, so rows are written bottom-up to
// keep north at the top of the image. When the palette is empty the buffer is
// cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, w, h int, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	for y := 0; y < h; y++ {
		row := (h - 1 - y) * w
		for x := 0; x < w; x++ {
			idx := int(cells[y*w+x])
			if idx > last {
				idx = last
			}
			base := (row + x) * 4
			col := palette[idx]
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// ScreenPoint maps a room coordinate to screen pixels at the given scale.
func ScreenPoint(x, y float64, h, scale int) (float64, float64) {
	return x * float64(scale), (float64(h) - y) * float64(scale)
}
