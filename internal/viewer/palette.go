// Package viewer draws a running evolution in a window. The window itself
// needs the ebiten build tag; pixel conversion here is tag-free.
package viewer

import (
	"image/color"

	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/sim"
)

// Palette maps terrain and bots to colors.
type Palette struct {
	Empty   color.RGBA
	Food    color.RGBA
	Poison  color.RGBA
	Wall    color.RGBA
	Control color.RGBA
}

// DefaultPalette returns the standard viewer colors.
func DefaultPalette() Palette {
	return Palette{
		Empty:   color.RGBA{R: 250, G: 250, B: 250, A: 255},
		Food:    color.RGBA{R: 40, G: 170, B: 40, A: 255},
		Poison:  color.RGBA{R: 200, G: 30, B: 30, A: 255},
		Wall:    color.RGBA{R: 90, G: 90, B: 90, A: 255},
		Control: color.RGBA{R: 240, G: 200, B: 0, A: 255},
	}
}

// Cell returns the terrain color for c.
func (p Palette) Cell(c sim.Cell) color.RGBA {
	switch c {
	case sim.CellFood:
		return p.Food
	case sim.CellPoison:
		return p.Poison
	case sim.CellWall:
		return p.Wall
	}
	return p.Empty
}

// Bot returns the color for b: the control color for the control bot,
// otherwise its lineage tag with no red channel.
func (p Palette) Bot(b *sim.Bot) color.RGBA {
	if b.Fixed {
		return p.Control
	}
	return color.RGBA{R: 0, G: b.ColorGreen, B: b.ColorBlue, A: 255}
}

// FillRGBA paints w into buf as row-major RGBA pixels, one pixel per cell.
// Live placed bots are drawn over their cell; dead bots are not drawn.
// buf must hold 4*Width*Height bytes.
func FillRGBA(buf []byte, w *sim.World, p Palette) {
	for i, c := range w.Snapshot() {
		put(buf, i, p.Cell(c))
	}
	for _, b := range w.Bots {
		if !b.Alive() || !b.Placed() {
			continue
		}
		put(buf, b.Y*w.Width+b.X, p.Bot(b))
	}
}

func put(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

// Options controls the viewer window and pacing.
type Options struct {
	Scale         int // screen pixels per cell
	TPS           int // window updates per second
	TicksPerFrame int // simulation ticks per window update
	Generations   int // stop after this many generations; 0 runs until closed
}

// DefaultOptions returns the standard viewer settings.
func DefaultOptions() Options {
	return Options{Scale: 16, TPS: 30, TicksPerFrame: 1}
}
