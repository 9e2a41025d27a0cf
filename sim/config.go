package sim

import (
	"fmt"
	"math"
)

// Default option values of the exit-time solver.
const (
	DefaultEpsilon          = 0.5
	DefaultEventName        = "exitTimeEvent"
	DefaultEfficiencyCutoff = 0.2
)

// CalibrationSampleCount is the number of resamples drawn from the first
// successful trajectory in calibration mode, and the number of diagnostic
// grouped-gamma draws per pass in testing mode.
const CalibrationSampleCount = 1_000_000

// ExitTimeConfig groups the options of the exit-time solver.
type ExitTimeConfig struct {
	Epsilon          float64 `yaml:"epsilon"`           // approximation looseness in [0,1]; 0 = exact reconstruction
	EventName        string  `yaml:"event_name"`        // predicate lookup key
	EfficiencyCutoff float64 `yaml:"efficiency_cutoff"` // rho threshold for grouped-gamma
	Verbose          bool    `yaml:"verbose"`           // per-realization diagnostic logging
	Testing          bool    `yaml:"testing"`           // expensive statistical self-check per accepted realization
	ConvergenceTest  bool    `yaml:"convergence"`       // calibration mode
}

// DefaultExitTimeConfig returns the configuration used when no options are given.
func DefaultExitTimeConfig() ExitTimeConfig {
	return ExitTimeConfig{
		Epsilon:          DefaultEpsilon,
		EventName:        DefaultEventName,
		EfficiencyCutoff: DefaultEfficiencyCutoff,
	}
}

// NewExitTimeConfig creates a configuration with epsilon clamped to [0,1].
func NewExitTimeConfig(epsilon float64, eventName string, efficiencyCutoff float64, verbose, testing, convergence bool) ExitTimeConfig {
	return ExitTimeConfig{
		Epsilon:          ClampEpsilon(epsilon),
		EventName:        eventName,
		EfficiencyCutoff: efficiencyCutoff,
		Verbose:          verbose,
		Testing:          testing,
		ConvergenceTest:  convergence,
	}
}

// ClampEpsilon limits epsilon to [0,1]. Out-of-range values are never rejected.
func ClampEpsilon(epsilon float64) float64 {
	if math.IsNaN(epsilon) || epsilon < 0 {
		return 0
	}
	return math.Min(epsilon, 1.0)
}

// Normalize clamps epsilon in place.
func (c *ExitTimeConfig) Normalize() {
	c.Epsilon = ClampEpsilon(c.Epsilon)
}

// Validate checks the fields that cannot be repaired by clamping.
func (c *ExitTimeConfig) Validate() error {
	if c.EventName == "" {
		return fmt.Errorf("event_name must not be empty")
	}
	if math.IsNaN(c.EfficiencyCutoff) || c.EfficiencyCutoff <= 0 || c.EfficiencyCutoff >= 1 {
		return fmt.Errorf("efficiency_cutoff must be in (0,1), got %v", c.EfficiencyCutoff)
	}
	return nil
}
