package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/sim"
	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/sim/report"
	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/sim/trace"
)

var (
	// CLI flags shared by run, view and config
	configPath    string // YAML config layered over the built-in defaults
	seed          int64  // Master seed for every RNG stream
	generations   int    // Number of generations to run
	maxTicks      int64  // Tick ceiling per generation
	chargeMoves   bool   // Charge successful moves like blocked ones
	logLevel      string // Log verbosity level
	historyPath   string // Generation history output (.json or .csv)
	plotPath      string // Ticks-per-generation chart output
	averageWindow int    // Moving-average window for summary and chart
	interactive   bool   // Toggle pause on every stdin line
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "botsim",
	Short: "Evolve genome-driven bots on a grid world",
}

// runCmd runs the evolution headless
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the evolution headless and log one line per generation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		recorder := report.NewTraceReporter(seed)
		ctrl, err := sim.NewController(cfg, seed, report.Multi{report.LogReporter{}, recorder})
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if interactive {
			logrus.Info("Interactive mode: press Enter to pause or resume")
			go watchPause(os.Stdin, ctrl)
		}

		logrus.Infof("Starting evolution: seed=%d generations=%d world=%dx%d population=%d",
			seed, cfg.Run.Generations, cfg.World.Width, cfg.World.Height, cfg.Evolution.PopulationSize)
		startTime := time.Now()
		ctrl.RunEvolution(cfg.Run.Generations)

		summary := trace.Summarize(recorder.History, averageWindow)
		logrus.Infof("Evolution complete in %v: mean %.1f ticks (stddev %.1f), best %d ticks at gen %d, control survived %d/%d",
			time.Since(startTime).Round(time.Millisecond), summary.MeanTicks, summary.StdDevTicks,
			summary.MaxTicks, summary.BestGeneration, summary.ControlSurvivals, summary.Generations)

		if err := writeOutputs(recorder.History); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveConfig loads --config (or the defaults) and applies the flags the
// user set explicitly.
func resolveConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if configPath != "" {
		loaded, err := sim.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("generations") {
		cfg.Run.Generations = generations
	}
	if cmd.Flags().Changed("max-ticks") {
		cfg.Run.MaxTicks = maxTicks
	}
	if cmd.Flags().Changed("charge-successful-moves") {
		cfg.Bot.ChargeSuccessfulMoves = chargeMoves
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// writeOutputs exports the history and chart when their paths are set.
func writeOutputs(h *trace.History) error {
	if historyPath != "" {
		if err := report.ExportHistory(h, historyPath); err != nil {
			return err
		}
		logrus.Infof("History written to %s", historyPath)
	}
	if plotPath != "" {
		if err := report.PlotTicks(h, averageWindow, plotPath); err != nil {
			return fmt.Errorf("plotting %s: %w", plotPath, err)
		}
		logrus.Infof("Chart written to %s", plotPath)
	}
	return nil
}

// addSimFlags registers the flags that shape the simulation itself.
func addSimFlags(cmd *cobra.Command) {
	defaults := sim.DefaultConfig()
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file layered over the built-in defaults")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for all random streams")
	cmd.Flags().IntVar(&generations, "generations", defaults.Run.Generations, "Number of generations to run")
	cmd.Flags().Int64Var(&maxTicks, "max-ticks", defaults.Run.MaxTicks, "Tick ceiling per generation")
	cmd.Flags().BoolVar(&chargeMoves, "charge-successful-moves", false, "Charge 1 health for moves onto empty or food cells")
	cmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// init sets up CLI flags and subcommands
func init() {
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&historyPath, "history", "", "Write the generation history to this file (.json or .csv)")
	runCmd.Flags().StringVar(&plotPath, "plot", "", "Write a ticks-per-generation chart to this file (.png, .svg, .pdf)")
	runCmd.Flags().IntVar(&averageWindow, "window", trace.DefaultWindow, "Moving-average window for the summary and chart")
	runCmd.Flags().BoolVar(&interactive, "interactive", false, "Toggle pause on every line read from stdin")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(configCmd)
}
