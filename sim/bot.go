// Defines the Bot: a genome interpreted as a tiny program plus the registers
// the program runs against (address, position, health, facing).

package sim

import "math/rand"

// Genome is a bot's heritable program. Every gene is in [0, GeneValues).
type Genome [GenomeSize]uint8

// Bot is one agent. The genome is only rewritten by the evolution engine
// between generations; registers change only while its world ticks.
type Bot struct {
	Genome Genome

	Addr       int // program counter, always in [0, GenomeSize)
	X, Y       int
	Health     int // in [0, HealthMax]; the bot is dead at 0
	Generation int
	Angle      int // facing, in [0, Directions)

	// Lineage tags for visualization. Clones inherit them, mutants get fresh ones.
	ColorBlue  uint8
	ColorGreen uint8

	Mutant bool // produced by point mutation
	Fixed  bool // hand-authored control bot, never bred

	rules BotConfig
	world *World // nil until placed; a nil world makes Step a no-op
}

// NewBot creates a dead, unplaced bot running genome. Call Reset before use.
func NewBot(genome Genome, rules BotConfig) *Bot {
	return &Bot{Genome: genome, rules: rules}
}

// Reset reinitializes the run-time registers and detaches the bot from any
// world. Genome, generation, lineage tags and flags are kept.
func (b *Bot) Reset(rng *rand.Rand) {
	b.Addr = 0
	b.Health = b.rules.StartHealth
	b.Angle = rng.Intn(Directions)
	b.world = nil
}

// Alive reports whether the bot has health left.
func (b *Bot) Alive() bool { return b.Health > 0 }

// Placed reports whether the bot is attached to a world.
func (b *Bot) Placed() bool { return b.world != nil }

// Heal adds n health, capped at HealthMax, and returns the result.
func (b *Bot) Heal(n int) int {
	b.Health = min(b.Health+n, b.rules.HealthMax)
	return b.Health
}

// Damage removes n health, floored at 0, and returns the result.
func (b *Bot) Damage(n int) int {
	b.Health = max(b.Health-n, 0)
	return b.Health
}

func (b *Bot) incAddr(delta int) {
	b.Addr = ((b.Addr+delta)%GenomeSize + GenomeSize) % GenomeSize
}

// target resolves a relative direction against the facing angle.
func (b *Bot) target(rel int) (int, int) {
	dx, dy := DirectionDelta(rel + b.Angle)
	return b.X + dx, b.Y + dy
}

// Step executes up to StepBudget instructions. Move and Fire end the tick;
// Sense, Turn and Jump only move the address pointer. A bot that spends the
// whole budget without acting loses 1 health.
func (b *Bot) Step() {
	if !b.Alive() || b.world == nil {
		return
	}
	for i := 0; i < b.rules.StepBudget; i++ {
		if !b.Alive() {
			return
		}
		ins := Decode(b.Genome[b.Addr])
		switch ins.Kind {
		case OpMove:
			b.move(ins.Arg)
			return
		case OpFire:
			b.fire(ins.Arg)
			return
		case OpSense:
			x, y := b.target(ins.Arg)
			b.incAddr(int(b.world.CheckCell(x, y, b)) + 1)
		case OpTurn:
			b.Angle = (b.Angle + ins.Arg) % Directions
			b.incAddr(1)
		case OpJump:
			b.incAddr(ins.Arg)
		}
	}
	if b.Damage(1) == 0 {
		b.die()
	}
}

func (b *Bot) move(rel int) {
	w := b.world
	x, y := b.target(rel)
	cat := w.CheckCell(x, y, b)
	switch cat {
	case CategoryPoison:
		// The bot does not enter; its own cell turns to poison and the
		// target stays poison.
		w.Stats.PoisonEaten++
		b.Damage(b.rules.PoisonDamage)
		w.SetPoison(b.X, b.Y)
		if !b.Alive() {
			w.Stats.Deaths++
		}
		return
	case CategoryEmpty:
		w.SetEmpty(b.X, b.Y)
		b.X, b.Y = x, y
		if !b.rules.ChargeSuccessfulMoves {
			return
		}
	case CategoryFood:
		w.SetEmpty(b.X, b.Y)
		b.X, b.Y = x, y
		w.SetEmpty(x, y)
		w.Stats.FoodEaten++
		b.Heal(b.rules.HealAmount)
		w.Replenish()
		if !b.rules.ChargeSuccessfulMoves {
			return
		}
	}
	b.pay(cat)
}

func (b *Bot) fire(rel int) {
	w := b.world
	x, y := b.target(rel)
	cat := w.CheckCell(x, y, b)
	switch cat {
	case CategoryFood:
		w.SetEmpty(x, y)
		w.Stats.FoodShot++
		b.Heal(b.rules.HealAmount)
		w.Replenish()
	case CategoryPoison:
		w.SetFood(x, y)
		w.Stats.PoisonNeutralized++
	}
	b.pay(cat)
}

// pay charges the 1-health action cost. A surviving bot's program skips
// ahead by category+1 so the outcome steers control flow.
func (b *Bot) pay(cat Category) {
	if b.Damage(1) > 0 {
		b.incAddr(int(cat) + 1)
		return
	}
	b.die()
}

// die clears the dead bot's cell. The bot stays in the world's list but no
// longer counts as an occupant.
func (b *Bot) die() {
	b.world.SetEmpty(b.X, b.Y)
	b.world.Stats.Deaths++
}
