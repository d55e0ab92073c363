package sim

import (
	"math/rand"
	"sort"
)

// Evolution owns the breeding population and turns one generation's
// outcome into the next generation.
type Evolution struct {
	cfg  EvolutionConfig
	bots BotConfig
	rng  *rand.Rand

	population []*Bot
}

// NewEvolution creates an engine with an empty population. Call Initialize
// to seed generation 0.
func NewEvolution(cfg EvolutionConfig, bots BotConfig, rng *rand.Rand) *Evolution {
	if rng == nil {
		panic("Evolution: rng must be non-nil")
	}
	return &Evolution{cfg: cfg, bots: bots, rng: rng}
}

// Initialize replaces the population with PopulationSize random genomes at
// generation 0.
func (e *Evolution) Initialize() {
	e.population = make([]*Bot, 0, e.cfg.PopulationSize)
	for i := 0; i < e.cfg.PopulationSize; i++ {
		var g Genome
		for j := range g {
			g[j] = uint8(e.rng.Intn(GeneValues))
		}
		b := NewBot(g, e.bots)
		e.tag(b)
		e.population = append(e.population, b)
	}
}

// Population returns the current bots in their current order.
func (e *Evolution) Population() []*Bot { return e.population }

// AliveCount counts live bots in the breeding population.
func (e *Evolution) AliveCount() int {
	n := 0
	for _, b := range e.population {
		if b.Alive() {
			n++
		}
	}
	return n
}

// Select orders the population by generation, then health, both descending,
// and returns the first n. Ties keep their previous order.
func (e *Evolution) Select(n int) []*Bot {
	sort.SliceStable(e.population, func(i, j int) bool {
		a, b := e.population[i], e.population[j]
		if a.Generation != b.Generation {
			return a.Generation > b.Generation
		}
		return a.Health > b.Health
	})
	n = min(max(n, 0), len(e.population))
	return e.population[:n:n]
}

// Reproduce replaces the population with the offspring of survivors (at most
// Survivors of them): ClonesPerSurvivor exact copies plus one mutant each,
// all one generation past their parent.
func (e *Evolution) Reproduce(survivors []*Bot) {
	if len(survivors) > e.cfg.Survivors {
		survivors = survivors[:e.cfg.Survivors]
	}
	next := make([]*Bot, 0, len(survivors)*OffspringPerSurvivor)
	for _, parent := range survivors {
		for i := 0; i < ClonesPerSurvivor; i++ {
			clone := NewBot(parent.Genome, e.bots)
			clone.Generation = parent.Generation + 1
			clone.ColorBlue, clone.ColorGreen = parent.ColorBlue, parent.ColorGreen
			next = append(next, clone)
		}
		mutant := NewBot(e.Mutate(parent.Genome), e.bots)
		mutant.Generation = parent.Generation + 1
		mutant.Mutant = true
		e.tag(mutant)
		next = append(next, mutant)
	}
	e.population = next
}

// Mutate returns a copy of g with between 1 and MaxMutations distinct genes
// rewritten, each to a value different from the one it replaces.
func (e *Evolution) Mutate(g Genome) Genome {
	n := 1 + e.rng.Intn(e.cfg.MaxMutations)
	for _, pos := range e.rng.Perm(GenomeSize)[:n] {
		v := uint8(e.rng.Intn(GeneValues - 1))
		if v >= g[pos] {
			v++
		}
		g[pos] = v
	}
	return g
}

// tag gives b a fresh random lineage color.
func (e *Evolution) tag(b *Bot) {
	b.ColorBlue = uint8(e.rng.Intn(256))
	b.ColorGreen = uint8(e.rng.Intn(256))
}
