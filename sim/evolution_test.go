package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvolution(seed int64) *Evolution {
	cfg := DefaultConfig()
	return NewEvolution(cfg.Evolution, cfg.Bot, rand.New(rand.NewSource(seed)))
}

// diffCount returns the number of gene positions where a and b differ.
func diffCount(a, b Genome) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

func TestNewEvolution_NilRNG_Panics(t *testing.T) {
	cfg := DefaultConfig()
	assert.PanicsWithValue(t, "Evolution: rng must be non-nil", func() {
		NewEvolution(cfg.Evolution, cfg.Bot, nil)
	})
}

func TestEvolution_Initialize_RandomGenerationZero(t *testing.T) {
	e := newTestEvolution(1)

	e.Initialize()

	pop := e.Population()
	require.Len(t, pop, 64)
	distinct := make(map[Genome]bool)
	for _, b := range pop {
		assert.Equal(t, 0, b.Generation)
		assert.False(t, b.Mutant)
		assert.False(t, b.Fixed)
		for _, g := range b.Genome {
			assert.Less(t, g, uint8(GeneValues))
		}
		distinct[b.Genome] = true
	}
	assert.Len(t, distinct, 64, "random genomes should not collide")
}

func TestEvolution_Initialize_SameSeedSameGenomes(t *testing.T) {
	a, b := newTestEvolution(9), newTestEvolution(9)
	a.Initialize()
	b.Initialize()

	for i := range a.Population() {
		assert.Equal(t, a.Population()[i].Genome, b.Population()[i].Genome)
	}
}

func TestEvolution_Select_OrdersByGenerationThenHealth(t *testing.T) {
	// GIVEN bots with mixed generation and health
	e := newTestEvolution(1)
	mk := func(gen, hp int) *Bot {
		b := NewBot(Genome{}, DefaultConfig().Bot)
		b.Generation, b.Health = gen, hp
		return b
	}
	oldHealthy := mk(1, 100)
	youngDead := mk(3, 0)
	young := mk(3, 5)
	mid := mk(2, 50)
	e.population = []*Bot{oldHealthy, youngDead, young, mid}

	// WHEN selecting 3
	got := e.Select(3)

	// THEN generation dominates health, and a dead bot of a newer generation
	// outranks a live bot of an older one
	assert.Equal(t, []*Bot{young, youngDead, mid}, got)
}

func TestEvolution_Select_StableForTies(t *testing.T) {
	e := newTestEvolution(1)
	bots := make([]*Bot, 5)
	for i := range bots {
		bots[i] = NewBot(Genome{}, DefaultConfig().Bot)
		bots[i].Health = 10
	}
	e.population = append([]*Bot(nil), bots...)

	got := e.Select(5)

	assert.Equal(t, bots, got)
}

func TestEvolution_Select_ClampsCount(t *testing.T) {
	e := newTestEvolution(1)
	e.Initialize()

	assert.Len(t, e.Select(100), 64)
	assert.Empty(t, e.Select(-1))
}

func TestEvolution_Reproduce_ClonesThenMutantPerParent(t *testing.T) {
	// GIVEN 8 selected parents
	e := newTestEvolution(2)
	e.Initialize()
	parents := e.Select(8)
	parentGenomes := make([]Genome, len(parents))
	parentGens := make([]int, len(parents))
	for i, p := range parents {
		parentGenomes[i] = p.Genome
		parentGens[i] = p.Generation
		p.ColorBlue, p.ColorGreen = uint8(10+i), uint8(20+i)
	}

	// WHEN reproducing
	e.Reproduce(parents)

	// THEN the population is refilled: 7 exact clones then 1 mutant per parent
	pop := e.Population()
	require.Len(t, pop, 64)
	mutants := 0
	for i, child := range pop {
		p := i / OffspringPerSurvivor
		assert.Equal(t, parentGens[p]+1, child.Generation)
		assert.False(t, child.Fixed)
		if i%OffspringPerSurvivor < ClonesPerSurvivor {
			assert.False(t, child.Mutant)
			assert.Equal(t, parentGenomes[p], child.Genome)
			assert.Equal(t, uint8(10+p), child.ColorBlue)
			assert.Equal(t, uint8(20+p), child.ColorGreen)
			continue
		}
		mutants++
		assert.True(t, child.Mutant)
		d := diffCount(parentGenomes[p], child.Genome)
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 10)
	}
	assert.Equal(t, 8, mutants)
}

func TestEvolution_Reproduce_CapsAtSurvivors(t *testing.T) {
	e := newTestEvolution(3)
	e.Initialize()

	e.Reproduce(e.Population())

	assert.Len(t, e.Population(), 64)
}

func TestEvolution_Reproduce_ParentsUntouched(t *testing.T) {
	e := newTestEvolution(4)
	e.Initialize()
	parents := e.Select(8)
	before := parents[0].Genome

	e.Reproduce(parents)

	assert.Equal(t, before, parents[0].Genome)
	assert.Equal(t, 0, parents[0].Generation)
}

func TestEvolution_Mutate_DiffersInBoundedGenes(t *testing.T) {
	e := newTestEvolution(5)
	var g Genome
	for i := range g {
		g[i] = uint8(i)
	}

	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		m := e.Mutate(g)
		d := diffCount(g, m)
		require.GreaterOrEqual(t, d, 1)
		require.LessOrEqual(t, d, 10)
		for _, v := range m {
			require.Less(t, v, uint8(GeneValues))
		}
		seen[d] = true
	}
	// every count in [1, 10] shows up over enough draws
	assert.Len(t, seen, 10)
}

func TestEvolution_AliveCount(t *testing.T) {
	e := newTestEvolution(6)
	e.Initialize()
	for i, b := range e.Population() {
		if i%2 == 0 {
			b.Health = 1
		}
	}

	assert.Equal(t, 32, e.AliveCount())
}
