package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/exit-time-sim/sim/trace"
)

// Outcome is the terminal state of one realization.
type Outcome = trace.Outcome

const (
	OutcomeEventMet     = trace.OutcomeEventMet
	OutcomeTimeExceeded = trace.OutcomeTimeExceeded
	OutcomeSkipped      = trace.OutcomeSkipped
)

// ExitTimeSolver computes exit times (hitting times) of a target predicate
// for stochastic simulations. Each realization runs the SSA without drawing
// waiting times, records the total propensities and, once the predicate
// holds, reconstructs an exit-time sample from them.
//
// In calibration mode (ConvergenceTest) only the first successful trajectory
// matters: its trace is resampled CalibrationSampleCount times and every
// later realization returns immediately.
type ExitTimeSolver struct {
	config   ExitTimeConfig
	model    ReactionModel
	duration float64
	target   Predicate
	stepper  *SSAStepper
	sampler  DistributionSampler

	Metrics *ExitTimeMetrics
	Trace   *trace.SimulationTrace // optional; nil disables recording
	RunID   string

	// eventAchieved latches once calibration mode has produced its samples.
	eventAchieved bool
	sampleNumber  int
}

// NewExitTimeSolver resolves the target predicate and prepares the stepper.
// A missing predicate is fatal to construction.
func NewExitTimeSolver(model ReactionModel, duration float64, config ExitTimeConfig, sampler DistributionSampler) (*ExitTimeSolver, error) {
	if !(duration > 0) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}
	reactions := model.Reactions()
	if len(reactions) == 0 {
		return nil, ErrNoReactions
	}
	config.Normalize()
	target, ok := findPredicate(model, config.EventName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPredicateNotFound, config.EventName)
	}

	s := &ExitTimeSolver{
		config:       config,
		model:        model,
		duration:     duration,
		target:       target,
		stepper:      NewSSAStepper(reactions, sampler, duration),
		sampler:      sampler,
		Metrics:      NewExitTimeMetrics(config.Epsilon, config.ConvergenceTest),
		sampleNumber: 1,
	}

	if config.Verbose {
		logrus.Infof("predicate: %s with initial evaluation: %v", target.Name(), target.Value())
		logrus.Infof("epsilon = %v", config.Epsilon)
	}
	return s, nil
}

// Config returns the normalized solver configuration.
func (s *ExitTimeSolver) Config() ExitTimeConfig {
	return s.config
}

// SolveOnce runs one realization and returns how it ended.
func (s *ExitTimeSolver) SolveOnce() Outcome {
	index := s.Metrics.Realizations
	s.Metrics.Realizations++

	var rec trace.RealizationRecord
	if s.config.ConvergenceTest {
		rec = s.solveOnceForConvergenceTest()
	} else {
		rec = s.solveOnceStandard()
	}

	if s.Trace.Enabled() {
		rec.RunID = s.RunID
		rec.Index = index
		s.Trace.RecordRealization(rec)
	}
	return rec.Outcome
}

// integrate resets a Resettable model, then steps the chain until the
// predicate holds or the clock reaches the duration. The predicate is checked
// before every step.
func (s *ExitTimeSolver) integrate(rc *RealizationContext) Outcome {
	if r, ok := s.model.(Resettable); ok {
		r.Reset()
	}
	for rc.Clock < s.duration {
		if s.target.Value() {
			if s.config.Verbose {
				logrus.Info("--------------Event--------------")
			}
			return OutcomeEventMet
		}
		s.stepper.StepOnce(rc)
	}
	return OutcomeTimeExceeded
}

// solveOnceStandard appends one sample for each realization that meets the
// event condition.
func (s *ExitTimeSolver) solveOnceStandard() trace.RealizationRecord {
	rc := NewRealizationContext()
	outcome := s.integrate(rc)

	if s.config.Verbose {
		s.logExpectations(rc)
	}

	rec := trace.RealizationRecord{Outcome: outcome, Steps: rc.Steps, Clock: rc.Clock}
	if outcome != OutcomeEventMet {
		return rec
	}

	traceLen := len(rc.Lambda)
	groups := PartitionLambda(rc.Lambda, s.config.Epsilon)
	rc.Lambda = nil
	s.logPartition(groups)

	s.Metrics.GroupCountSum += float64(groups.Len())

	rho := EfficiencyRatio(groups.Len(), traceLen)
	strategy := SelectStrategy(rho, s.config.EfficiencyCutoff)
	sample := strategy.Sample(groups, s.sampler)

	if s.config.Verbose {
		logrus.Infof("rho = %v, strategy = %s, exit time = %v", rho, strategy, sample)
	}
	s.Metrics.ExitTimes = append(s.Metrics.ExitTimes, sample)

	if s.config.Testing {
		s.logExpectations(rc)
		s.groupedGammaDiagnostics(groups, CalibrationSampleCount)
	}

	rec.Groups = groups.Len()
	rec.Rho = rho
	rec.Strategy = string(strategy)
	rec.Samples = 1
	rec.FirstTime = sample
	return rec
}

// solveOnceForConvergenceTest fills the sample set from the first
// trajectory that meets the event condition.
func (s *ExitTimeSolver) solveOnceForConvergenceTest() trace.RealizationRecord {
	if s.eventAchieved {
		return trace.RealizationRecord{Outcome: OutcomeSkipped}
	}

	rc := NewRealizationContext()
	outcome := s.integrate(rc)
	s.logExpectations(rc)

	rec := trace.RealizationRecord{Outcome: outcome, Steps: rc.Steps, Clock: rc.Clock}
	if outcome != OutcomeEventMet {
		return rec
	}
	s.eventAchieved = true

	traceLen := len(rc.Lambda)
	groups := PartitionLambda(rc.Lambda, s.config.Epsilon)
	rc.Lambda = nil
	s.logPartition(groups)
	s.Metrics.GroupCountSum = float64(groups.Len())

	strategy := StrategyGroupedGamma
	if s.config.Epsilon == 0 {
		strategy = StrategyExactExponential
	}
	samples := make([]float64, CalibrationSampleCount)
	for n := range samples {
		samples[n] = strategy.Sample(groups, s.sampler)
	}
	s.Metrics.ExitTimes = append(s.Metrics.ExitTimes, samples...)

	mean, std := stat.MeanStdDev(samples, nil)
	logrus.WithFields(logrus.Fields{
		"strategy": strategy,
		"groups":   groups.Len(),
		"lambda":   traceLen,
	}).Infof("calibration resamples: mean = %v, std = %v", mean, std)

	rec.Groups = groups.Len()
	rec.Rho = EfficiencyRatio(groups.Len(), traceLen)
	rec.Strategy = string(strategy)
	rec.Samples = len(samples)
	rec.FirstTime = samples[0]
	return rec
}

// groupedGammaDiagnostics draws n grouped-gamma samples for the mean and a
// second n around that mean for the standard deviation. Output only; the
// draws do advance the sampler.
func (s *ExitTimeSolver) groupedGammaDiagnostics(groups Partition, n int) (mean, stdDev float64) {
	draws := make([]float64, n)
	for i := range draws {
		draws[i] = SampleGroupedGamma(groups, s.sampler)
	}
	mean = stat.Mean(draws, nil)
	logrus.Infof("<Gamma>_tf = %v", mean)

	variance := 0.0
	for i := 0; i < n; i++ {
		d := SampleGroupedGamma(groups, s.sampler) - mean
		variance += d * d
	}
	stdDev = math.Sqrt(variance / float64(n))
	logrus.Infof("Sqrt(<Gamma^2>_tf) = %v", stdDev)
	return mean, stdDev
}

func (s *ExitTimeSolver) logExpectations(rc *RealizationContext) {
	logrus.Infof("Sample Number = %d", s.sampleNumber)
	logrus.Infof("E[t] = %v", rc.ExpectedTime)
	logrus.Infof("Sqrt(Var[t]) = %v", math.Sqrt(rc.ExpectedVariance))
	s.sampleNumber++
}

func (s *ExitTimeSolver) logPartition(groups Partition) {
	if !s.config.Verbose {
		return
	}
	logrus.Infof("Number of Lists: %d", groups.Len())
	for i, g := range groups {
		logrus.Infof("list %d size %d: %v", i, len(g), g)
	}
}
