package trace

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultWindow is the moving-average window used by reports.
const DefaultWindow = 20

// Summary aggregates statistics from a History.
type Summary struct {
	Generations      int
	MeanTicks        float64
	StdDevTicks      float64 // sample standard deviation; 0 with fewer than 2 records
	MaxTicks         int64
	BestGeneration   int     // first generation reaching MaxTicks; -1 when empty
	FinalAverage     float64 // last value of the moving average
	ControlSurvivals int     // generations the control bot outlived
	TotalDeaths      int
}

// Summarize computes aggregate statistics from a History.
// Safe for nil or empty histories.
func Summarize(h *History, window int) *Summary {
	summary := &Summary{BestGeneration: -1}
	if h == nil || len(h.Records) == 0 {
		return summary
	}

	ticks := h.Ticks()
	summary.Generations = len(ticks)
	if len(ticks) > 1 {
		summary.MeanTicks, summary.StdDevTicks = stat.MeanStdDev(ticks, nil)
	} else {
		summary.MeanTicks = ticks[0]
	}

	for _, r := range h.Records {
		if r.Ticks > summary.MaxTicks || summary.BestGeneration < 0 {
			summary.MaxTicks = r.Ticks
			summary.BestGeneration = r.Generation
		}
		if r.ControlAlive {
			summary.ControlSurvivals++
		}
		summary.TotalDeaths += r.Deaths
	}

	avg := MovingAverage(ticks, window)
	summary.FinalAverage = avg[len(avg)-1]
	return summary
}

// MovingAverage returns the trailing mean of values over window points. The
// first window-1 points average over what is available so far. A window
// below 1 is treated as 1.
func MovingAverage(values []float64, window int) []float64 {
	window = max(window, 1)
	out := make([]float64, len(values))
	for i := range values {
		lo := max(0, i-window+1)
		out[i] = floats.Sum(values[lo:i+1]) / float64(i+1-lo)
	}
	return out
}
