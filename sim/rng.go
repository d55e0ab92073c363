package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey is the master seed of an evolution run. The same key and
// Config replay the same worlds, tick counts and bred genomes.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Random streams, one per consumer. Draws on one stream never shift another,
// so adding an item spawn does not change which cells the bots start on.
const (
	// SubsystemEvolution draws random genomes, mutation sites and lineage colors.
	SubsystemEvolution = "evolution"

	// SubsystemItems places food and poison.
	SubsystemItems = "items"

	// SubsystemPlacement picks bot start cells.
	SubsystemPlacement = "placement"

	// SubsystemBots resets bot registers (facing angle).
	SubsystemBots = "bots"
)

// PartitionedRNG hands out one seeded *rand.Rand per stream name.
//
// The evolution stream is seeded with the key itself, so the seed passed on
// the command line is exactly the seed of generation 0's genomes. Every
// other stream is seeded with key XOR fnv1a64(name).
//
// Not safe for concurrent use; the Controller owns it.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG for key. Streams are created on
// first use.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// Seed returns the seed the named stream is (or will be) created with.
func (p *PartitionedRNG) Seed(name string) int64 {
	if name == SubsystemEvolution {
		return int64(p.key)
	}
	return int64(p.key) ^ fnv1a64(name)
}

// ForSubsystem returns the stream for name, creating it on first use.
// Repeated calls return the same instance, so draws continue where the
// previous generation left off.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.Seed(name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the master seed.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
