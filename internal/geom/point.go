// Package geom holds the continuous position model robots move in.
//
// Headings are compass degrees: 0 points along +y (north) and 90 along +x
// (east).
package geom

import (
	"fmt"
	"math"
)

// Point is a location in room coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Tile returns the integer tile coordinates containing p.
func (p Point) Tile() (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// Advance returns the point reached by moving distance along heading from p.
// A negative distance moves backwards.
func (p Point) Advance(heading, distance float64) Point {
	sin, cos := sinCosDeg(heading)
	return Point{X: p.X + distance*sin, Y: p.Y + distance*cos}
}

func (p Point) String() string {
	return fmt.Sprintf("(%0.2f, %0.2f)", p.X, p.Y)
}

// WrapHeading maps any angle in degrees into [0, 360).
func WrapHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// sinCosDeg is exact on the compass points so cardinal moves keep integer
// coordinates.
func sinCosDeg(deg float64) (float64, float64) {
	switch WrapHeading(deg) {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(deg * math.Pi / 180)
}
