// Package trace records per-generation outcomes of an evolution run and
// summarizes them. This package has no dependencies on sim/; it stores pure
// data types so reporters and tools can consume it without the engine.
package trace

// GenerationRecord captures the outcome of one finished generation.
type GenerationRecord struct {
	Generation    int   `json:"generation"`
	Ticks         int64 `json:"ticks"`
	Lineage       int   `json:"lineage"`
	Alive         int   `json:"alive"`
	MutantsAlive  int   `json:"mutants_alive"`
	BestHealth    int   `json:"best_health"`
	ControlAlive  bool  `json:"control_alive"`
	ControlHealth int   `json:"control_health"`
	Food          int   `json:"food"`
	Poison        int   `json:"poison"`
	FoodEaten     int   `json:"food_eaten"`
	PoisonEaten   int   `json:"poison_eaten"`
	Deaths        int   `json:"deaths"`
}
