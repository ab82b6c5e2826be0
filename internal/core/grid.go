package core

// Tile flags stored per cell of a FlagGrid.
const (
	FlagCleaned uint8 = 1 << iota
	FlagOccupied
)

// FlagGrid stores per-tile bit flags in row-major order and keeps a running
// count of how many tiles carry each flag.
type FlagGrid struct {
	W, H   int
	data   []uint8
	counts [8]int
}

// NewFlagGrid allocates an empty grid with the given dimensions.
func NewFlagGrid(w, h int) *FlagGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &FlagGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (g *FlagGrid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) addresses a tile of the grid.
func (g *FlagGrid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Has reports whether the tile at (x, y) carries flag. Coordinates outside the
// grid never carry any flag.
func (g *FlagGrid) Has(x, y int, flag uint8) bool {
	if !g.Contains(x, y) {
		return false
	}
	return g.data[g.Index(x, y)]&flag != 0
}

// Set adds flag to the tile at (x, y) and reports whether the tile changed.
func (g *FlagGrid) Set(x, y int, flag uint8) bool {
	if !g.Contains(x, y) {
		return false
	}
	idx := g.Index(x, y)
	if g.data[idx]&flag == flag {
		return false
	}
	for bit := 0; bit < 8; bit++ {
		mask := uint8(1) << bit
		if flag&mask != 0 && g.data[idx]&mask == 0 {
			g.counts[bit]++
		}
	}
	g.data[idx] |= flag
	return true
}

// Clear removes flag from the tile at (x, y) and reports whether the tile
// changed.
func (g *FlagGrid) Clear(x, y int, flag uint8) bool {
	if !g.Contains(x, y) {
		return false
	}
	idx := g.Index(x, y)
	if g.data[idx]&flag == 0 {
		return false
	}
	for bit := 0; bit < 8; bit++ {
		mask := uint8(1) << bit
		if flag&mask != 0 && g.data[idx]&mask != 0 {
			g.counts[bit]--
		}
	}
	g.data[idx] &^= flag
	return true
}

// Count returns the number of tiles carrying flag. flag must be a single bit.
func (g *FlagGrid) Count(flag uint8) int {
	for bit := 0; bit < 8; bit++ {
		if flag == uint8(1)<<bit {
			return g.counts[bit]
		}
	}
	return 0
}

// Clone returns an independent copy of the grid.
func (g *FlagGrid) Clone() *FlagGrid {
	c := &FlagGrid{W: g.W, H: g.H, data: make([]uint8, len(g.data)), counts: g.counts}
	copy(c.data, g.data)
	return c
}
