package room

import (
	"math"

	"roomba/internal/core"
)

const (
	// verticalNudge shifts the start of a vertical wall so its slope stays
	// finite.
	verticalNudge = 0.001
	endpointSlack = 1e-9
)

// DrawWall rasterizes the segment from a to b into occupied tiles. The line is
// sampled at unit-length steps from its low-x end, and every diagonal jump
// between consecutive samples also blocks the tile to the left of the new one,
// so a robot moving up to one tile per step cannot slip between two
// diagonally touching wall tiles. Tiles falling outside the room are dropped.
// Both endpoints are included.
func (r *Room) DrawWall(a, b Tile) {
	x1, y1 := float64(a.X), float64(a.Y)
	x2, y2 := float64(b.X), float64(b.Y)
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if x2-x1 == 0 {
		x1 -= verticalNudge
	}
	dx := x2 - x1
	dy := y2 - y1
	slope := dy / dx
	intercept := y1 - x1*slope
	length := math.Sqrt(dx*dx + dy*dy)
	step := dx / length

	first, last, ok := r.sampleSpan(x1, y1, dx/length, dy/length, length)
	if !ok {
		return
	}
	sample := func(i int) (int, int) {
		x := x1 + float64(i)*step
		y := x*slope + intercept
		return int(math.Floor(x + 0.5)), int(math.Floor(y + 0.5))
	}

	var lastX, lastY int
	if first > 0 {
		lastX, lastY = sample(first - 1)
	}
	for i := first; i <= last; i++ {
		if x1+float64(i)*step > x2+endpointSlack {
			break
		}
		bx, by := sample(i)
		r.block(bx, by)
		if i > 0 && lastX != bx && lastY != by {
			r.block(bx-1, by)
		}
		lastX, lastY = bx, by
	}
}

// sampleSpan returns the range of unit-step sample indices along the segment
// that can touch the room. Samples outside the box [-2, W+1]×[-2, H+1] round
// to tiles (and thickening tiles) beyond the room, so only the span inside
// it, widened by one sample on each side, is walked.
func (r *Room) sampleSpan(x1, y1, ux, uy, length float64) (first, last int, ok bool) {
	lo, hi := 0.0, length
	clip := func(p, u, lower, upper float64) {
		switch {
		case u > 0:
			lo = math.Max(lo, (lower-p)/u)
			hi = math.Min(hi, (upper-p)/u)
		case u < 0:
			lo = math.Max(lo, (upper-p)/u)
			hi = math.Min(hi, (lower-p)/u)
		case p < lower || p > upper:
			hi = -1
		}
	}
	clip(x1, ux, -2, float64(r.w)+1)
	clip(y1, uy, -2, float64(r.h)+1)
	if lo > hi {
		return 0, 0, false
	}
	first = int(math.Floor(lo)) - 1
	if first < 0 {
		first = 0
	}
	return first, int(math.Ceil(hi)) + 1, true
}

func (r *Room) block(x, y int) {
	// A wall drawn over cleaned floor takes that tile out of the reachable set.
	r.tiles.Clear(x, y, core.FlagCleaned)
	r.tiles.Set(x, y, core.FlagOccupied)
}
