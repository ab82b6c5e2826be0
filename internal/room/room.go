// Package room models the rectangular floor a robot cleans: a grid of tiles
// that are dirty or clean, some of which are blocked by walls.
package room

import (
	"errors"
	"fmt"

	"roomba/internal/core"
	"roomba/internal/geom"
	pcore "roomba/pkg/core"
)

var (
	// ErrInvalidParameter reports a construction argument outside its domain.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNoFreeTile is returned when a room has no unoccupied tile to place a
	// robot on.
	ErrNoFreeTile = errors.New("room has no unoccupied tile")
)

// TileState is the dirt state of a tile.
type TileState uint8

const (
	Dirty TileState = iota
	Clean
)

func (s TileState) String() string {
	if s == Clean {
		return "Clean"
	}
	return "Dirty"
}

// Tile addresses one grid cell.
type Tile struct {
	X, Y int
}

// Room is a W×H grid of tiles. Cleaned and occupied tiles are tracked as
// independent flag sets; an occupied tile is never marked cleaned.
type Room struct {
	w, h  int
	tiles *core.FlagGrid
}

// New returns an empty, fully dirty room.
func New(w, h int) (*Room, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: room dimensions %dx%d must be positive", ErrInvalidParameter, w, h)
	}
	return &Room{w: w, h: h, tiles: core.NewFlagGrid(w, h)}, nil
}

// Width returns the number of tile columns.
func (r *Room) Width() int { return r.w }

// Height returns the number of tile rows.
func (r *Room) Height() int { return r.h }

// Size reports the grid dimensions.
func (r *Room) Size() core.Size { return core.Size{W: r.w, H: r.h} }

// MarkCleaned cleans the tile under p and reports whether it was dirty.
// Positions outside the room or on a wall are ignored.
func (r *Room) MarkCleaned(p geom.Point) bool {
	x, y := p.Tile()
	if r.tiles.Has(x, y, core.FlagOccupied) {
		return false
	}
	return r.tiles.Set(x, y, core.FlagCleaned)
}

// TileState returns the dirt state of the tile under p. Occupancy does not
// affect the answer.
func (r *Room) TileState(p geom.Point) TileState {
	x, y := p.Tile()
	if r.tiles.Has(x, y, core.FlagCleaned) {
		return Clean
	}
	return Dirty
}

// InRoom reports whether p lies inside the room bounds on an unoccupied tile.
// The far edges x == W and y == H are outside, as are non-finite points.
func (r *Room) InRoom(p geom.Point) bool {
	// Written positively so NaN coordinates fail the check.
	if !(p.X >= 0 && p.Y >= 0 && p.X < float64(r.w) && p.Y < float64(r.h)) {
		return false
	}
	x, y := p.Tile()
	return !r.tiles.Has(x, y, core.FlagOccupied)
}

// IsCleaned reports whether tile (x, y) has been cleaned.
func (r *Room) IsCleaned(x, y int) bool { return r.tiles.Has(x, y, core.FlagCleaned) }

// IsOccupied reports whether tile (x, y) is blocked by a wall.
func (r *Room) IsOccupied(x, y int) bool { return r.tiles.Has(x, y, core.FlagOccupied) }

// Coverage returns the number of reachable tiles and how many are clean.
func (r *Room) Coverage() (total, cleaned int) {
	return r.w*r.h - r.tiles.Count(core.FlagOccupied), r.tiles.Count(core.FlagCleaned)
}

// RandomPosition rejection-samples integer coordinates until one is in the
// room.
func (r *Room) RandomPosition(rng *pcore.RNG) (geom.Point, error) {
	if total, _ := r.Coverage(); total <= 0 {
		return geom.Point{}, ErrNoFreeTile
	}
	for {
		p := geom.Pt(float64(rng.IntN(r.w)), float64(rng.IntN(r.h)))
		if r.InRoom(p) {
			return p, nil
		}
	}
}

// Walls lists occupied tiles in row-major order.
func (r *Room) Walls() []Tile { return r.list(core.FlagOccupied) }

// Cleaned lists cleaned tiles in row-major order.
func (r *Room) Cleaned() []Tile { return r.list(core.FlagCleaned) }

func (r *Room) list(flag uint8) []Tile {
	out := make([]Tile, 0, r.tiles.Count(flag))
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			if r.tiles.Has(x, y, flag) {
				out = append(out, Tile{X: x, Y: y})
			}
		}
	}
	return out
}

// Clone returns a deep copy sharing no tile state with r.
func (r *Room) Clone() *Room {
	return &Room{w: r.w, h: r.h, tiles: r.tiles.Clone()}
}
