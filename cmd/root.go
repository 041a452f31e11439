package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/dispatch-sim/dispatch-sim/sim"
)

var (
	// CLI flags for the facility run
	capacity        int           // Global bound on queued requests across all groups
	numGroups       int           // Number of request groups (one worker pool each)
	devicesPerGroup int           // Workers per group
	seed            int64         // Seed for random request generation and delays
	logLevel        string        // Log verbosity level
	genDelayMin     time.Duration // Min sleep between generated requests
	genDelayMax     time.Duration // Max sleep between generated requests
	workDelayMin    time.Duration // Min simulated processing time per request
	workDelayMax    time.Duration // Max simulated processing time per request
	runDuration     time.Duration // Stop after this long (0 = run until interrupt)
	scenario        string        // Named scenario preset to apply
	scenarioFile    string        // YAML file holding scenario presets
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "dispatch-sim",
	Short: "Concurrent simulator for a bounded work-distribution facility",
}

// runCmd executes the facility using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the facility until interrupted",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.Config{
			Capacity:        capacity,
			NumGroups:       numGroups,
			DevicesPerGroup: devicesPerGroup,
			GenDelay:        sim.DelayRange{Min: genDelayMin, Max: genDelayMax},
			WorkDelay:       sim.DelayRange{Min: workDelayMin, Max: workDelayMax},
			Seed:            seed,
		}

		if scenario != "" {
			if err := ApplyScenario(&cfg, scenarioFile, scenario); err != nil {
				logrus.Fatalf("unable to load scenario %q: %v", scenario, err)
			}
		}

		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}

		// Interrupt (and optional --duration timeout) requests shutdown;
		// the facility joins every thread before Run returns.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if runDuration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, runDuration)
			defer cancel()
		}

		facility := sim.NewFacility(cfg, sim.NewLogSink())
		facility.Run(ctx)
		facility.Metrics.Print()

		logrus.Info("Run complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&capacity, "capacity", 10, "Global capacity of the request store")
	runCmd.Flags().IntVar(&numGroups, "groups", 2, "Number of request groups")
	runCmd.Flags().IntVar(&devicesPerGroup, "devices-per-group", 2, "Number of devices per group")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random request generation")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Delay bounds (uniform random within each range)
	runCmd.Flags().DurationVar(&genDelayMin, "gen-delay-min", sim.DefaultGenDelayMin, "Min sleep between generated requests")
	runCmd.Flags().DurationVar(&genDelayMax, "gen-delay-max", sim.DefaultGenDelayMax, "Max sleep between generated requests")
	runCmd.Flags().DurationVar(&workDelayMin, "work-delay-min", sim.DefaultWorkDelayMin, "Min simulated processing time")
	runCmd.Flags().DurationVar(&workDelayMax, "work-delay-max", sim.DefaultWorkDelayMax, "Max simulated processing time")

	runCmd.Flags().DurationVar(&runDuration, "duration", 0, "Stop after this long (0 = run until interrupt)")

	// Scenario presets
	runCmd.Flags().StringVar(&scenario, "scenario", "", "Named scenario preset to apply")
	runCmd.Flags().StringVar(&scenarioFile, "scenario-config", "scenarios.yaml", "YAML file holding scenario presets")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
