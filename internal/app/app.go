//go:build ebiten

package app

import (
	"image/color"

	"roomba/internal/core"
	"roomba/internal/render"
	"roomba/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth      = 240
	minViewHeight = 420
)

// Game adapts a core scene to the ebiten.Game interface.
type Game struct {
	scene   core.Scene
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pace    *core.FixedStep
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	done     bool
}

// New constructs a Game that advances scene at rate steps per second.
func New(scene core.Scene, palette []color.RGBA, params core.ParameterSnapshot, scale int, rate float64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := scene.Size()
	return &Game{
		scene:   scene,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(scene, scale),
		hud:     ui.NewHUD(scene, params, hudWidth),
		pace:    core.NewFixedStep(rate),
		palette: palette,
		scale:   scale,
	}
}

// Update handles per-frame input and advances the scene.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !g.done {
			g.scene.Abandon()
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	g.overlay.Update()

	due := g.pace.Due()
	switch {
	case g.done:
	case g.tickOnce:
		g.tickOnce = false
		if err := g.step(); err != nil {
			return err
		}
	case !g.paused:
		for i := 0; i < due && !g.done; i++ {
			if err := g.step(); err != nil {
				return err
			}
		}
	}
	g.hud.Update(g.status())
	return nil
}

func (g *Game) step() error {
	done, err := g.scene.Step()
	if err != nil {
		return err
	}
	g.done = done
	return nil
}

func (g *Game) status() string {
	switch {
	case g.done:
		return "finished"
	case g.paused:
		return "paused"
	default:
		return "running"
	}
}

// Draw renders the room, the robots and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scene.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.scene.Size().W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize(g.scene.Size(), g.scale)
}

// ScreenSize reports the window size needed for a room at the given scale.
func ScreenSize(size core.Size, scale int) (int, int) {
	h := size.H * scale
	if h < minViewHeight {
		h = minViewHeight
	}
	return size.W*scale + hudWidth, h
}
