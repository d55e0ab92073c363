// sim/world.go
package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// WorldStats counts item and lifecycle events over one world's lifetime.
type WorldStats struct {
	Rebalances        int // Rebalance passes (one per tick)
	Replenishes       int // Replenish passes (one per food eaten or shot)
	FoodEaten         int // food consumed by moving onto it
	FoodShot          int // food consumed by firing at it
	PoisonEaten       int // poison cells walked into
	PoisonNeutralized int // poison cells turned into food by firing
	Deaths            int
}

// World is the bounded grid plus the bots placed on it.
// The grid tracks terrain only; bot occupancy is answered from bot positions.
type World struct {
	Width  int
	Height int
	// Tick counts AdvanceTick calls since creation.
	Tick int64
	// Bots in placement order; dead bots stay until the world is discarded.
	Bots  []*Bot
	Stats WorldStats

	grid      []Cell
	cfg       Config
	items     *rand.Rand
	placement *rand.Rand
}

// NewWorld allocates the grid, stamps the border and interior walls, then
// scatters the starting food and poison. The world may end up under quota on
// a crowded grid.
func NewWorld(cfg Config, items, placement *rand.Rand) *World {
	if items == nil || placement == nil {
		panic("World: item and placement RNGs must be non-nil")
	}
	w := &World{
		Width:     cfg.World.Width,
		Height:    cfg.World.Height,
		grid:      make([]Cell, cfg.World.Width*cfg.World.Height),
		cfg:       cfg,
		items:     items,
		placement: placement,
	}
	w.stampWalls()
	for i := 0; i < cfg.Items.FoodStart; i++ {
		w.addRandom(CellFood)
	}
	for i := 0; i < cfg.Items.PoisonStart; i++ {
		w.addRandom(CellPoison)
	}
	return w
}

func (w *World) index(x, y int) int { return y*w.Width + x }

// InBounds reports whether (x, y) lies on the grid.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// Cell returns the terrain at (x, y). Coordinates off the grid read as wall.
func (w *World) Cell(x, y int) Cell {
	if !w.InBounds(x, y) {
		return CellWall
	}
	return w.grid[w.index(x, y)]
}

// Snapshot returns a row-major copy of the grid.
func (w *World) Snapshot() []Cell {
	out := make([]Cell, len(w.grid))
	copy(out, w.grid)
	return out
}

func (w *World) stampWalls() {
	for x := 0; x < w.Width; x++ {
		w.grid[w.index(x, 0)] = CellWall
		w.grid[w.index(x, w.Height-1)] = CellWall
	}
	for y := 0; y < w.Height; y++ {
		w.grid[w.index(0, y)] = CellWall
		w.grid[w.index(w.Width-1, y)] = CellWall
	}

	wall := func(x, y int) {
		if w.InBounds(x, y) {
			w.grid[w.index(x, y)] = CellWall
		}
	}
	cx, cy := w.Width/2, w.Height/2
	for d := -3; d <= 3; d++ {
		wall(cx, cy+d)
		wall(cx+d, cy)
	}
	left := w.Height / 3
	for x := 0; x < 7; x++ {
		wall(x, left)
	}
	top := (2 * w.Width) / 3
	for y := 0; y < 7; y++ {
		wall(top, y)
	}
}

// CountItems scans the grid for food and poison.
func (w *World) CountItems() (food, poison int) {
	for _, c := range w.grid {
		switch c {
		case CellFood:
			food++
		case CellPoison:
			poison++
		}
	}
	return food, poison
}

// BotAt returns the live bot at (x, y), or nil.
func (w *World) BotAt(x, y int) *Bot {
	return w.occupant(x, y, nil)
}

// occupant returns a live bot other than self at (x, y), or nil.
func (w *World) occupant(x, y int, self *Bot) *Bot {
	for _, b := range w.Bots {
		if b != self && b.Alive() && b.X == x && b.Y == y {
			return b
		}
	}
	return nil
}

// CheckCell classifies (x, y) for self. Priority: wall or off-grid, another
// live bot, poison, food, empty.
func (w *World) CheckCell(x, y int, self *Bot) Category {
	if w.Cell(x, y) == CellWall {
		return CategoryBlocked
	}
	if w.occupant(x, y, self) != nil {
		return CategoryBot
	}
	switch w.grid[w.index(x, y)] {
	case CellPoison:
		return CategoryPoison
	case CellFood:
		return CategoryFood
	}
	return CategoryEmpty
}

// set writes c at (x, y); off-grid coordinates and walls are left alone.
func (w *World) set(x, y int, c Cell) {
	if !w.InBounds(x, y) {
		return
	}
	i := w.index(x, y)
	if w.grid[i] == CellWall {
		return
	}
	w.grid[i] = c
}

func (w *World) SetEmpty(x, y int)  { w.set(x, y, CellEmpty) }
func (w *World) SetFood(x, y int)   { w.set(x, y, CellFood) }
func (w *World) SetPoison(x, y int) { w.set(x, y, CellPoison) }

// randomInterior draws a coordinate strictly inside the border.
func randomInterior(rng *rand.Rand, width, height int) (int, int) {
	return 1 + rng.Intn(width-2), 1 + rng.Intn(height-2)
}

// addRandom places c on a random empty interior cell that no live bot stands
// on. Returns false once the attempt budget is spent.
func (w *World) addRandom(c Cell) bool {
	for i := 0; i < w.cfg.World.PlacementAttempts; i++ {
		x, y := randomInterior(w.items, w.Width, w.Height)
		if w.grid[w.index(x, y)] != CellEmpty || w.BotAt(x, y) != nil {
			continue
		}
		w.grid[w.index(x, y)] = c
		return true
	}
	return false
}

// Rebalance tops food and poison up to their targets, stopping a type at the
// first placement that runs out of attempts.
func (w *World) Rebalance() {
	w.Stats.Rebalances++
	food, poison := w.CountItems()
	for ; food < w.cfg.Items.FoodTarget; food++ {
		if !w.addRandom(CellFood) {
			break
		}
	}
	for ; poison < w.cfg.Items.PoisonTarget; poison++ {
		if !w.addRandom(CellPoison) {
			break
		}
	}
}

// Replenish is the item pass triggered by eating. Each of ReplenishRate draws
// picks food or poison with equal odds and spawns one unless that type is
// already at its cap.
func (w *World) Replenish() {
	w.Stats.Replenishes++
	food, poison := w.CountItems()
	for i := 0; i < w.cfg.Items.ReplenishRate; i++ {
		if w.items.Float64() < 0.5 {
			if food >= w.cfg.Items.FoodCap {
				continue
			}
			food++
			w.addRandom(CellFood)
		} else {
			if poison >= w.cfg.Items.PoisonCap {
				continue
			}
			poison++
			w.addRandom(CellPoison)
		}
	}
}

// PlaceBots replaces the world's bot list with bots, each on a distinct
// random empty interior cell.
func (w *World) PlaceBots(bots []*Bot) {
	w.Bots = make([]*Bot, 0, len(bots)+1)
	claimed := make(map[[2]int]bool, len(bots))
	for _, b := range bots {
		w.place(b, claimed)
	}
}

// AddSpecialBot appends one more bot on a cell not held by a live bot.
func (w *World) AddSpecialBot(b *Bot) {
	claimed := make(map[[2]int]bool, len(w.Bots))
	for _, o := range w.Bots {
		if o.Alive() {
			claimed[[2]int{o.X, o.Y}] = true
		}
	}
	w.place(b, claimed)
}

// place tries PlacementAttempts random cells. A bot that finds none is parked
// at the origin without a world, which makes it inert for the generation.
func (w *World) place(b *Bot, claimed map[[2]int]bool) {
	w.Bots = append(w.Bots, b)
	for i := 0; i < w.cfg.World.PlacementAttempts; i++ {
		x, y := randomInterior(w.placement, w.Width, w.Height)
		if w.grid[w.index(x, y)] != CellEmpty || claimed[[2]int{x, y}] {
			continue
		}
		b.X, b.Y = x, y
		b.world = w
		claimed[[2]int{x, y}] = true
		return
	}
	logrus.Debugf("[tick %07d] no free cell after %d attempts; parking bot at origin", w.Tick, w.cfg.World.PlacementAttempts)
	b.X, b.Y = 0, 0
	b.world = nil
}

// AdvanceTick runs one tick: every bot alive at its turn steps once, in list
// order, then items are rebalanced.
func (w *World) AdvanceTick() {
	w.Tick++
	for _, b := range w.Bots {
		if b.Alive() {
			b.Step()
		}
	}
	w.Rebalance()
}

// AliveCount counts live bots on this world, including any control bot.
func (w *World) AliveCount() int {
	n := 0
	for _, b := range w.Bots {
		if b.Alive() {
			n++
		}
	}
	return n
}
