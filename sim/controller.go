// sim/controller.go
package sim

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Controller runs generations: it builds a world, places the population and
// the control bot, ticks until collapse or the tick ceiling, then hands the
// outcome to the reporter and the evolution engine.
//
// All simulation state is touched from the goroutine driving the controller.
// Only the pause flag may be flipped from elsewhere.
type Controller struct {
	cfg      Config
	rng      *PartitionedRNG
	evo      *Evolution
	reporter Reporter

	world      *World
	control    *Bot
	generation int

	paused atomic.Bool
}

// NewController validates cfg and seeds generation 0 from seed.
// reporter may be nil.
func NewController(cfg Config, seed int64, reporter Reporter) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	evo := NewEvolution(cfg.Evolution, cfg.Bot, rng.ForSubsystem(SubsystemEvolution))
	evo.Initialize()
	return &Controller{
		cfg:      cfg,
		rng:      rng,
		evo:      evo,
		reporter: reporter,
	}, nil
}

func (c *Controller) Config() Config { return c.cfg }
func (c *Controller) Evolution() *Evolution { return c.evo }
func (c *Controller) RNG() *PartitionedRNG { return c.rng }
func (c *Controller) World() *World { return c.world }
func (c *Controller) Control() *Bot { return c.control }
func (c *Controller) Generation() int { return c.generation }
func (c *Controller) SetReporter(r Reporter) { c.reporter = r }
func (c *Controller) SetPaused(paused bool) { c.paused.Store(paused) }
func (c *Controller) Paused() bool { return c.paused.Load() }

// TogglePause flips the pause flag and returns the new value.
func (c *Controller) TogglePause() bool {
	for {
		old := c.paused.Load()
		if c.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// BeginGeneration builds a fresh world, resets and places the population,
// and adds a freshly built control bot after it.
func (c *Controller) BeginGeneration() {
	c.world = NewWorld(c.cfg, c.rng.ForSubsystem(SubsystemItems), c.rng.ForSubsystem(SubsystemPlacement))
	regs := c.rng.ForSubsystem(SubsystemBots)
	for _, b := range c.evo.Population() {
		b.Reset(regs)
	}
	c.world.PlaceBots(c.evo.Population())

	c.control = NewBot(c.cfg.ControlGenomeValue(), c.cfg.Bot)
	c.control.Fixed = true
	c.control.Reset(regs)
	c.world.AddSpecialBot(c.control)

	food, poison := c.world.CountItems()
	logrus.Debugf("[gen %05d] world ready: %d bots, food=%d poison=%d", c.generation, len(c.world.Bots), food, poison)
}

// Done reports whether the current generation is over: the tick ceiling is
// reached or no more than Survivors breeding bots are alive.
func (c *Controller) Done() bool {
	if c.world == nil {
		return true
	}
	return c.world.Tick >= c.cfg.Run.MaxTicks || c.evo.AliveCount() <= c.cfg.Evolution.Survivors
}

// Tick advances the world by one tick unless paused, and reports whether the
// generation is over.
func (c *Controller) Tick() bool {
	if c.Done() {
		return true
	}
	if c.Paused() {
		return false
	}
	c.world.AdvanceTick()
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		food, poison := c.world.CountItems()
		logrus.Tracef("[gen %05d][tick %07d] alive=%d food=%d poison=%d",
			c.generation, c.world.Tick, c.world.AliveCount(), food, poison)
	}
	return c.Done()
}

// RunGeneration runs one generation to completion and returns its tick count.
// While paused it polls every PausePollMs without changing any state.
func (c *Controller) RunGeneration() int64 {
	c.BeginGeneration()
	poll := max(time.Duration(c.cfg.Run.PausePollMs)*time.Millisecond, time.Millisecond)
	for {
		if c.Paused() {
			time.Sleep(poll)
			continue
		}
		if c.Tick() {
			break
		}
	}
	logrus.Debugf("[gen %05d] ended at tick %d with %d breeding bots alive", c.generation, c.world.Tick, c.evo.AliveCount())
	return c.world.Tick
}

// FinishGeneration reports the generation that just ran, then selects the
// survivors and breeds the next population.
func (c *Controller) FinishGeneration() GenerationResult {
	res := c.result()
	if c.reporter != nil {
		c.reporter.Report(res)
	}
	survivors := c.evo.Select(c.cfg.Evolution.Survivors)
	c.evo.Reproduce(survivors)
	c.generation++
	return res
}

// RunEvolution runs generations back to back and returns their results.
func (c *Controller) RunEvolution(generations int) []GenerationResult {
	results := make([]GenerationResult, 0, generations)
	for i := 0; i < generations; i++ {
		c.RunGeneration()
		results = append(results, c.FinishGeneration())
	}
	return results
}

func (c *Controller) result() GenerationResult {
	res := GenerationResult{Generation: c.generation}
	if c.world != nil {
		res.Ticks = c.world.Tick
		res.Food, res.Poison = c.world.CountItems()
		res.Stats = c.world.Stats
	}
	if c.control != nil {
		res.ControlAlive = c.control.Alive()
		res.ControlHealth = c.control.Health
	}
	for _, b := range c.evo.Population() {
		res.Lineage = max(res.Lineage, b.Generation)
		if !b.Alive() {
			continue
		}
		res.Alive++
		if b.Mutant {
			res.MutantsAlive++
		}
		res.BestHealth = max(res.BestHealth, b.Health)
	}
	return res
}
