//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"roomba/internal/core"
	"roomba/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	robotColor   = color.RGBA{R: 40, G: 120, B: 220, A: 255}
	headingColor = color.RGBA{R: 250, G: 200, B: 40, A: 255}
)

// Overlay draws the robots on top of the room grid.
type Overlay struct {
	scene       core.Scene
	scale       int
	showHeading bool
	pixel       *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scene core.Scene, scale int) *Overlay {
	o := &Overlay{scene: scene, scale: scale, showHeading: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles heading markers with H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHeading = !o.showHeading
	}
}

// Draw renders every robot as a dot with an optional heading tick.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.scene == nil {
		return
	}
	h := o.scene.Size().H
	scale := float64(o.scale)
	body := math.Max(scale*0.8, 3)
	for _, m := range o.scene.Robots() {
		sx, sy := render.ScreenPoint(m.X, m.Y, h, o.scale)
		o.drawPoint(screen, sx, sy, body, robotColor)
		if !o.showHeading {
			continue
		}
		rad := m.Heading * math.Pi / 180
		// Headings are compass bearings; screen y grows downward.
		tx := sx + math.Sin(rad)*body
		ty := sy - math.Cos(rad)*body
		o.drawLine(screen, sx, sy, tx, ty, math.Max(scale*0.15, 1), headingColor)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
