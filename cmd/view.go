package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/internal/viewer"
	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/sim"
	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/sim/report"
)

var viewOpts = viewer.DefaultOptions()

// viewCmd opens the live grid viewer
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Watch the evolution in a window (needs -tags ebiten)",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		ctrl, err := sim.NewController(cfg, seed, report.LogReporter{})
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		opts := viewOpts
		if cmd.Flags().Changed("generations") {
			opts.Generations = cfg.Run.Generations
		}
		if err := viewer.Run(ctrl, opts); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func init() {
	addSimFlags(viewCmd)
	viewCmd.Flags().IntVar(&viewOpts.Scale, "scale", viewOpts.Scale, "Screen pixels per cell")
	viewCmd.Flags().IntVar(&viewOpts.TPS, "tps", viewOpts.TPS, "Window updates per second")
	viewCmd.Flags().IntVar(&viewOpts.TicksPerFrame, "ticks-per-frame", viewOpts.TicksPerFrame, "Simulation ticks per window update")
}
