package report

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/sim/trace"
)

// PlotTicks draws ticks per generation and their moving average over window
// generations, and saves the chart to path. The average only covers full
// windows: its first point sits at generation window-1, and a history shorter
// than window gets no average line. The image format follows the extension
// (.png, .svg, .pdf).
func PlotTicks(h *trace.History, window int, path string) error {
	if h == nil || len(h.Records) == 0 {
		return errors.New("no generations to plot")
	}

	p := plot.New()
	p.Title.Text = "Generation lifetime"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Ticks"

	rawPts := make(plotter.XYs, len(h.Records))
	for i, r := range h.Records {
		rawPts[i].X = float64(r.Generation)
		rawPts[i].Y = float64(r.Ticks)
	}
	rawLine, err := plotter.NewLine(rawPts)
	if err != nil {
		return fmt.Errorf("ticks line: %w", err)
	}
	rawLine.LineStyle.Color = color.Black
	p.Add(plotter.NewGrid(), rawLine)
	p.Legend.Add("ticks", rawLine)

	if avgPts := averagePoints(h, window); len(avgPts) > 0 {
		avgLine, err := plotter.NewLine(avgPts)
		if err != nil {
			return fmt.Errorf("average line: %w", err)
		}
		avgLine.LineStyle.Color = color.RGBA{R: 220, A: 255}
		avgLine.LineStyle.Width = vg.Points(2)
		p.Add(avgLine)
		p.Legend.Add(fmt.Sprintf("avg(%d)", max(window, 1)), avgLine)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}

// averagePoints returns the full-window moving average of h's tick counts,
// one point per generation from index window-1 on.
func averagePoints(h *trace.History, window int) plotter.XYs {
	window = max(window, 1)
	if len(h.Records) < window {
		return nil
	}
	avg := trace.MovingAverage(h.Ticks(), window)
	pts := make(plotter.XYs, 0, len(avg)-window+1)
	for i := window - 1; i < len(avg); i++ {
		pts = append(pts, plotter.XY{X: float64(h.Records[i].Generation), Y: avg[i]})
	}
	return pts
}
