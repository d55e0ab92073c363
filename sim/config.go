package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// GenomeSize is the number of genes in a genome; also the size of the
	// program address space.
	GenomeSize = 64

	// GeneValues is the number of distinct gene values (genes are in [0, GeneValues)).
	GeneValues = 64

	// ClonesPerSurvivor is the number of exact copies each survivor contributes.
	ClonesPerSurvivor = 7

	// OffspringPerSurvivor is clones plus the single mutant.
	OffspringPerSurvivor = ClonesPerSurvivor + 1
)

// DefaultControlGenome is the hand-authored reference program injected every
// generation next to the breeding population.
var DefaultControlGenome = []int{17, 9, 1, 61, 1, 1, 26, 57, 56, 3, 54}

// WorldConfig groups grid geometry parameters.
type WorldConfig struct {
	Width             int `yaml:"width"`              // columns including the border (>= 3)
	Height            int `yaml:"height"`             // rows including the border (>= 3)
	PlacementAttempts int `yaml:"placement_attempts"` // random probes per item or bot placement
}

// ItemConfig groups food and poison population parameters.
type ItemConfig struct {
	FoodStart     int `yaml:"food_start"`
	PoisonStart   int `yaml:"poison_start"`
	FoodCap       int `yaml:"food_cap"`       // replenish skips food at or above this count
	PoisonCap     int `yaml:"poison_cap"`     // replenish skips poison at or above this count
	FoodTarget    int `yaml:"food_target"`    // rebalance tops food up to this count every tick
	PoisonTarget  int `yaml:"poison_target"`  // rebalance tops poison up to this count every tick
	ReplenishRate int `yaml:"replenish_rate"` // spawn attempts per replenish pass
}

// BotConfig groups health and interpreter parameters.
type BotConfig struct {
	HealthMax    int `yaml:"health_max"`
	StartHealth  int `yaml:"start_health"`
	HealAmount   int `yaml:"heal_amount"`
	PoisonDamage int `yaml:"poison_damage"`
	StepBudget   int `yaml:"step_budget"` // instruction dispatches per tick

	// ChargeSuccessfulMoves makes moves onto Empty or Food cost 1 health and
	// advance the address by category+1, like blocked moves do. The default
	// (false) makes those moves free and leaves the address in place. Set
	// true for the stricter rule where every move pays.
	ChargeSuccessfulMoves bool `yaml:"charge_successful_moves"`
}

// EvolutionConfig groups population and reproduction parameters.
type EvolutionConfig struct {
	PopulationSize int   `yaml:"population_size"` // must equal Survivors * OffspringPerSurvivor
	Survivors      int   `yaml:"survivors"`
	MaxMutations   int   `yaml:"max_mutations"`  // mutants differ from their parent in 1..MaxMutations genes
	ControlGenome  []int `yaml:"control_genome"` // zero-padded to GenomeSize
}

// RunConfig groups the generation loop parameters.
type RunConfig struct {
	Generations int   `yaml:"generations"`
	MaxTicks    int64 `yaml:"max_ticks"`     // tick ceiling per generation
	PausePollMs int   `yaml:"pause_poll_ms"` // sleep between pause checks
}

// Config is the full run configuration. Loaded from YAML via LoadConfig(path)
// or built from DefaultConfig().
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Items     ItemConfig      `yaml:"items"`
	Bot       BotConfig       `yaml:"bot"`
	Evolution EvolutionConfig `yaml:"evolution"`
	Run       RunConfig       `yaml:"run"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:             50,
			Height:            30,
			PlacementAttempts: 200,
		},
		Items: ItemConfig{
			FoodStart:     20,
			PoisonStart:   20,
			FoodCap:       50,
			PoisonCap:     50,
			FoodTarget:    110,
			PoisonTarget:  110,
			ReplenishRate: 2,
		},
		Bot: BotConfig{
			HealthMax:    120,
			StartHealth:  35,
			HealAmount:   10,
			PoisonDamage: 310,
			StepBudget:   10,
		},
		Evolution: EvolutionConfig{
			PopulationSize: 64,
			Survivors:      8,
			MaxMutations:   10,
			ControlGenome:  append([]int(nil), DefaultControlGenome...),
		},
		Run: RunConfig{
			Generations: 5000,
			MaxTicks:    100000,
			PausePollMs: 10,
		},
	}
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig().
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that all fields are usable. A population that the survivors
// cannot exactly refill is rejected here rather than truncated at breeding time.
func (c Config) Validate() error {
	w := c.World
	if w.Width < 3 || w.Height < 3 {
		return fmt.Errorf("world must be at least 3x3, got %dx%d", w.Width, w.Height)
	}
	if w.PlacementAttempts <= 0 {
		return fmt.Errorf("world.placement_attempts must be positive, got %d", w.PlacementAttempts)
	}

	for _, f := range []struct {
		name string
		val  int
	}{
		{"items.food_start", c.Items.FoodStart},
		{"items.poison_start", c.Items.PoisonStart},
		{"items.food_cap", c.Items.FoodCap},
		{"items.poison_cap", c.Items.PoisonCap},
		{"items.food_target", c.Items.FoodTarget},
		{"items.poison_target", c.Items.PoisonTarget},
		{"items.replenish_rate", c.Items.ReplenishRate},
	} {
		if f.val < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", f.name, f.val)
		}
	}

	b := c.Bot
	if b.HealthMax <= 0 {
		return fmt.Errorf("bot.health_max must be positive, got %d", b.HealthMax)
	}
	if b.StartHealth <= 0 || b.StartHealth > b.HealthMax {
		return fmt.Errorf("bot.start_health must be in [1, %d], got %d", b.HealthMax, b.StartHealth)
	}
	if b.HealAmount < 0 {
		return fmt.Errorf("bot.heal_amount must be non-negative, got %d", b.HealAmount)
	}
	if b.PoisonDamage < 0 {
		return fmt.Errorf("bot.poison_damage must be non-negative, got %d", b.PoisonDamage)
	}
	if b.StepBudget <= 0 {
		return fmt.Errorf("bot.step_budget must be positive, got %d", b.StepBudget)
	}

	e := c.Evolution
	if e.Survivors <= 0 {
		return fmt.Errorf("evolution.survivors must be positive, got %d", e.Survivors)
	}
	if e.Survivors*OffspringPerSurvivor != e.PopulationSize {
		return fmt.Errorf("evolution.population_size must equal survivors*%d = %d, got %d",
			OffspringPerSurvivor, e.Survivors*OffspringPerSurvivor, e.PopulationSize)
	}
	if e.MaxMutations < 1 || e.MaxMutations > GenomeSize {
		return fmt.Errorf("evolution.max_mutations must be in [1, %d], got %d", GenomeSize, e.MaxMutations)
	}
	if len(e.ControlGenome) > GenomeSize {
		return fmt.Errorf("evolution.control_genome has %d genes, max %d", len(e.ControlGenome), GenomeSize)
	}
	for i, g := range e.ControlGenome {
		if g < 0 || g >= GeneValues {
			return fmt.Errorf("evolution.control_genome[%d] must be in [0, %d], got %d", i, GeneValues-1, g)
		}
	}

	r := c.Run
	if r.Generations < 0 {
		return fmt.Errorf("run.generations must be non-negative, got %d", r.Generations)
	}
	if r.MaxTicks <= 0 {
		return fmt.Errorf("run.max_ticks must be positive, got %d", r.MaxTicks)
	}
	if r.PausePollMs < 0 {
		return fmt.Errorf("run.pause_poll_ms must be non-negative, got %d", r.PausePollMs)
	}
	return nil
}

// ControlGenomeValue returns the configured control genome, zero-padded.
// Call only on a validated Config.
func (c Config) ControlGenomeValue() Genome {
	var g Genome
	for i, v := range c.Evolution.ControlGenome {
		g[i] = uint8(v)
	}
	return g
}
