// Tracks per-generation outcome metrics handed to reporters.

package sim

import "fmt"

// GenerationResult summarizes one finished generation. Counts are taken
// after the last tick and before selection.
type GenerationResult struct {
	Generation    int   `json:"generation"`     // 0-based index within the run
	Ticks         int64 `json:"ticks"`          // ticks executed before collapse or the ceiling
	Lineage       int   `json:"lineage"`        // highest Bot.Generation in the population
	Alive         int   `json:"alive"`          // live breeding bots
	MutantsAlive  int   `json:"mutants_alive"`  // live breeding bots flagged Mutant
	BestHealth    int   `json:"best_health"`    // highest health among live breeding bots
	ControlAlive  bool  `json:"control_alive"`  // the control bot outlived the generation
	ControlHealth int   `json:"control_health"`
	Food          int   `json:"food"`
	Poison        int   `json:"poison"`

	Stats WorldStats `json:"stats"`
}

// String renders the one-line summary printed per generation.
func (r GenerationResult) String() string {
	return fmt.Sprintf("Gen %d: %d ticks", r.Generation, r.Ticks)
}

// Reporter receives every finished generation. Implementations must not
// mutate simulation state.
type Reporter interface {
	Report(GenerationResult)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(GenerationResult)

// Report calls f(r).
func (f ReporterFunc) Report(r GenerationResult) { f(r) }
