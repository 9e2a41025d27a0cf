package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/exit-time-sim/sim"
	"github.com/inference-sim/exit-time-sim/sim/network"
	"github.com/inference-sim/exit-time-sim/sim/trace"
)

var (
	// CLI flags for the run
	seed         int64   // Seed for the SSA / reconstruction draw sequence
	duration     float64 // Simulated-time bound of each realization
	realizations int     // Number of realizations attempted
	logLevel     string  // Log verbosity level
	modelPath    string  // YAML reaction network
	configPath   string  // YAML exit-time options (optional)
	outputPrefix string  // Report path prefix
	traceLevel   string  // Realization trace level

	// CLI flags overriding the options file
	epsilon          float64 // Approximation looseness in [0,1]
	eventName        string  // Target predicate name
	efficiencyCutoff float64 // rho threshold for grouped-gamma
	verbose          bool    // Per-realization diagnostics
	selfCheck        bool    // Expensive statistical self-check
	convergence      bool    // Calibration mode
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "exit-time-sim",
	Short: "Exit-time estimation for stochastic reaction networks",
}

// runCmd executes the realizations using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Estimate the exit-time distribution of a model's target event",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if modelPath == "" {
			logrus.Fatalf("Model file not provided. Exiting simulation.")
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q", traceLevel)
		}

		cfg, err := resolveConfig(cmd, configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.SetLevel(diagnosticLevel(level, cfg))

		model, err := network.Load(modelPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
		solver, err := sim.NewExitTimeSolver(model, duration, cfg, sim.NewSeededSampler(rng))
		if err != nil {
			logrus.Fatalf("Failed to initialize exit-time solver: %v", err)
		}
		if trace.TraceLevel(traceLevel) == trace.TraceLevelRealizations {
			solver.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelRealizations})
		}

		logrus.Infof("Starting %d realizations, duration=%v, epsilon=%v, efficiencyCutoff=%v, convergence=%v",
			realizations, duration, cfg.Epsilon, cfg.EfficiencyCutoff, cfg.ConvergenceTest)

		startTime := time.Now()
		campaign := sim.NewCampaign(solver, realizations)
		campaign.Run()

		if solver.Trace != nil {
			logTraceSummary(trace.Summarize(solver.Trace))
		}

		path, err := solver.OutputData(outputPrefix)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Report written to %s in %v", path, time.Since(startTime))
		logrus.Info("Simulation complete.")
	},
}

// resolveConfig layers defaults, the options file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, path string) (sim.ExitTimeConfig, error) {
	cfg := sim.DefaultExitTimeConfig()
	if path != "" {
		loaded, err := sim.LoadExitTimeConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	flags := cmd.Flags()
	if flags.Changed("epsilon") {
		cfg.Epsilon = epsilon
	}
	if flags.Changed("event-name") {
		cfg.EventName = eventName
	}
	if flags.Changed("efficiency-cutoff") {
		cfg.EfficiencyCutoff = efficiencyCutoff
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("testing") {
		cfg.Testing = selfCheck
	}
	if flags.Changed("convergence") {
		cfg.ConvergenceTest = convergence
	}
	cfg.Normalize()
	return cfg, cfg.Validate()
}

// diagnosticLevel raises level to at least info when the verbose or testing
// diagnostics are requested.
func diagnosticLevel(level logrus.Level, cfg sim.ExitTimeConfig) logrus.Level {
	if (cfg.Verbose || cfg.Testing) && level < logrus.InfoLevel {
		return logrus.InfoLevel
	}
	return level
}

func logTraceSummary(s *trace.TraceSummary) {
	logrus.WithFields(logrus.Fields{
		"realizations":  s.TotalRealizations,
		"event_met":     s.EventMetCount,
		"time_exceeded": s.TimeExceededCount,
		"skipped":       s.SkippedCount,
		"mean_steps":    s.MeanSteps,
		"mean_rho":      s.MeanRho,
		"max_groups":    s.MaxGroups,
	}).Infof("trace summary: strategies=%v", s.StrategyCounts)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerRunFlags binds the run flags of c to the package-level flag variables.
func registerRunFlags(c *cobra.Command) {
	c.Flags().Int64Var(&seed, "seed", 42, "Seed for the SSA and reconstruction draw sequence")
	c.Flags().Float64Var(&duration, "duration", 100, "Simulated-time bound of each realization")
	c.Flags().IntVar(&realizations, "realizations", 1000, "Number of realizations")
	c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().StringVar(&modelPath, "model", "", "Path to the YAML reaction network")
	c.Flags().StringVar(&configPath, "config", "", "Path to a YAML exit-time options file")
	c.Flags().StringVar(&outputPrefix, "output-prefix", "", "Report path prefix")
	c.Flags().StringVar(&traceLevel, "trace-level", "none", "Realization trace level (none, realizations)")

	// exit-time options
	c.Flags().Float64Var(&epsilon, "epsilon", sim.DefaultEpsilon, "Approximation looseness in [0,1]; 0 = exact SSA reconstruction")
	c.Flags().StringVar(&eventName, "event-name", sim.DefaultEventName, "Name of the target predicate")
	c.Flags().Float64Var(&efficiencyCutoff, "efficiency-cutoff", sim.DefaultEfficiencyCutoff, "Use grouped-gamma reconstruction when groups/propensities <= cutoff")
	c.Flags().BoolVar(&verbose, "verbose", false, "Log per-realization diagnostics")
	c.Flags().BoolVar(&selfCheck, "testing", false, "Run the expensive grouped-gamma self-check per accepted realization")
	c.Flags().BoolVar(&convergence, "convergence", false, "Calibration mode: resample the first successful trajectory")
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}
