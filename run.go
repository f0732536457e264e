package birdloader

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Resizable lets the user resize the window; the screen follows the
	// window size and OnLayout is told about every change.
	Resizable bool
	ShowFPS   bool
	// OnLayout is called with the screen size on the first frame and after
	// every size change. Hosts place loaders here with Loader.SetBounds.
	OnLayout func(width, height int)
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene      *Scene
	cfg        RunConfig
	lastW      int
	lastH      int
	laidOutYet bool
}

func (g *game) Update() error {
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.cfg.Width, g.cfg.Height
	if g.cfg.Resizable {
		w, h = outsideWidth, outsideHeight
	}
	if !g.laidOutYet || w != g.lastW || h != g.lastH {
		g.laidOutYet = true
		g.lastW, g.lastH = w, h
		if g.cfg.OnLayout != nil {
			g.cfg.OnLayout(w, h)
		}
	}
	return w, h
}

// Run opens a window and drives the scene until the window is closed or an
// update callback returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}
