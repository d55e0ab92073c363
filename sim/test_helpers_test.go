package sim

import (
	"math/rand"
	"testing"
)

// quietConfig returns the default config with no items at all, so scenario
// tests control every non-wall cell themselves.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Items = ItemConfig{}
	return cfg
}

// newTestWorld builds a world from cfg with fixed-seed RNG streams.
func newTestWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	return NewWorld(cfg, rand.New(rand.NewSource(1)), rand.New(rand.NewSource(2)))
}

// putBot places a fresh bot at (x, y) facing angle, bypassing random placement.
func putBot(w *World, g Genome, x, y, angle int) *Bot {
	b := NewBot(g, w.cfg.Bot)
	b.Reset(rand.New(rand.NewSource(3)))
	b.X, b.Y, b.Angle = x, y, angle
	b.world = w
	w.Bots = append(w.Bots, b)
	return b
}

// genomeOf builds a genome whose leading genes are genes and the rest fill.
func genomeOf(fill uint8, genes ...uint8) Genome {
	var g Genome
	for i := range g {
		g[i] = fill
	}
	copy(g[:], genes)
	return g
}

// testController builds a controller with a small tick ceiling so whole
// generations finish quickly.
func testController(t *testing.T, seed int64, maxTicks int64) *Controller {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Run.MaxTicks = maxTicks
	c, err := NewController(cfg, seed, nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

// wallMask records which cells are walls.
func wallMask(w *World) []bool {
	mask := make([]bool, len(w.grid))
	for i, c := range w.grid {
		mask[i] = c == CellWall
	}
	return mask
}
