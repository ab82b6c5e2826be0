//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"roomba/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the room view.
type HUD struct {
	scene      core.Scene
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     string
}

// NewHUD constructs a HUD for the provided scene and panel width.
func NewHUD(scene core.Scene, params core.ParameterSnapshot, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{scene: scene, width: width, snapshot: params, status: "running"}
}

// Update records the run status shown in the header.
func (h *HUD) Update(status string) {
	if h == nil {
		return
	}
	h.status = status
}

// Draw renders the panel at offsetX, spanning the full screen height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawText()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText() {
	face := basicfont.Face7x13
	header := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	label := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	muted := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.scene.Name(), face, panelPadding, y, header)
	y += lineHeight
	text.Draw(h.panel, h.status, face, panelPadding, y, muted)
	y += lineHeight
	text.Draw(h.panel, fmt.Sprintf("step      %d / %d", h.scene.Steps(), h.scene.Ceiling()), face, panelPadding, y, label)
	y += lineHeight
	text.Draw(h.panel, fmt.Sprintf("coverage  %.1f%%", h.scene.Coverage()*100), face, panelPadding, y, label)

	for _, group := range h.snapshot.Groups {
		y += groupSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, header)
		for _, p := range group.Params {
			y += lineHeight
			text.Draw(h.panel, p.Label, face, panelPadding, y, muted)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, label)
		}
	}
}

const (
	panelPadding   = 12
	lineHeight     = 18
	groupSpacing   = 30
	headerBaseline = 18
)
