// Package report provides sim.Reporter implementations: a per-generation log
// line, an in-memory trace recorder, and fan-out to several sinks. History
// export and charting live next to them in export.go and plot.go.
package report

import (
	"github.com/sirupsen/logrus"

	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/sim"
	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/sim/trace"
)

// Multi fans every result out to each non-nil reporter in order.
type Multi []sim.Reporter

// Report forwards r to every reporter.
func (m Multi) Report(r sim.GenerationResult) {
	for _, rep := range m {
		if rep != nil {
			rep.Report(r)
		}
	}
}

// LogReporter prints the one-line generation summary at Info and the
// population details at Debug.
type LogReporter struct{}

// Report logs r.
func (LogReporter) Report(r sim.GenerationResult) {
	logrus.Info(r.String())
	logrus.Debugf("[gen %05d] alive=%d mutants=%d best_hp=%d control_alive=%t food=%d poison=%d deaths=%d",
		r.Generation, r.Alive, r.MutantsAlive, r.BestHealth, r.ControlAlive, r.Food, r.Poison, r.Stats.Deaths)
}

// TraceReporter records every result into a trace.History.
type TraceReporter struct {
	History *trace.History
}

// NewTraceReporter creates a recorder with an empty history for seed.
func NewTraceReporter(seed int64) *TraceReporter {
	return &TraceReporter{History: trace.NewHistory(seed)}
}

// Report appends r to the history.
func (t *TraceReporter) Report(r sim.GenerationResult) {
	t.History.Record(ToRecord(r))
}

// ToRecord flattens a generation result into its trace record.
func ToRecord(r sim.GenerationResult) trace.GenerationRecord {
	return trace.GenerationRecord{
		Generation:    r.Generation,
		Ticks:         r.Ticks,
		Lineage:       r.Lineage,
		Alive:         r.Alive,
		MutantsAlive:  r.MutantsAlive,
		BestHealth:    r.BestHealth,
		ControlAlive:  r.ControlAlive,
		ControlHealth: r.ControlHealth,
		Food:          r.Food,
		Poison:        r.Poison,
		FoodEaten:     r.Stats.FoodEaten,
		PoisonEaten:   r.Stats.PoisonEaten,
		Deaths:        r.Stats.Deaths,
	}
}
