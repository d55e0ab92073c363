//go:build ebiten

package viewer

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/sim"
)

// Game adapts a sim.Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *sim.Controller
	opts    Options
	palette Palette

	img  *ebiten.Image
	buf  []byte
	last sim.GenerationResult
	done int
}

// New constructs a Game and begins the controller's current generation.
func New(ctrl *sim.Controller, opts Options) *Game {
	cfg := ctrl.Config()
	w, h := cfg.World.Width, cfg.World.Height
	g := &Game{
		ctrl:    ctrl,
		opts:    opts,
		palette: DefaultPalette(),
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
	}
	ctrl.BeginGeneration()
	return g
}

// Update handles keys and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}

	for i := 0; i < max(g.opts.TicksPerFrame, 1); i++ {
		if !g.ctrl.Tick() {
			continue
		}
		g.last = g.ctrl.FinishGeneration()
		g.done++
		if g.opts.Generations > 0 && g.done >= g.opts.Generations {
			return ebiten.Termination
		}
		g.ctrl.BeginGeneration()
		break
	}
	return nil
}

// Draw renders the grid and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	FillRGBA(g.buf, g.ctrl.World(), g.palette)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.opts.Scale), float64(g.opts.Scale))
	screen.DrawImage(g.img, op)

	status := fmt.Sprintf("gen %d  tick %d  alive %d", g.ctrl.Generation(), g.ctrl.World().Tick, g.ctrl.Evolution().AliveCount())
	if g.done > 0 {
		status += fmt.Sprintf("  | last: %d ticks", g.last.Ticks)
	}
	if g.ctrl.Paused() {
		status += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.ctrl.Config()
	return cfg.World.Width * g.opts.Scale, cfg.World.Height * g.opts.Scale
}

// Run opens the window and drives ctrl until the window closes or the
// generation limit is reached.
func Run(ctrl *sim.Controller, opts Options) error {
	game := New(ctrl, opts)
	cfg := ctrl.Config()

	ebiten.SetWindowTitle("botsim")
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(cfg.World.Width*opts.Scale, cfg.World.Height*opts.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("viewer: %w", err)
	}
	logrus.Debugf("viewer closed after %d generations", game.done)
	return nil
}
