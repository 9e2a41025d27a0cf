package sim

import "fmt"

// EventDrivenSolver advances a realization by exactly one reaction.
type EventDrivenSolver interface {
	StepOnce(rc *RealizationContext)
}

// TauLeapingSolver is the generic step-size / batch-execution capability of
// approximate solvers. SSAStepper does not implement it: the exit-time
// estimator never proposes a leap size nor fires reactions in batches.
type TauLeapingSolver interface {
	CalculateProposedTau(tauLimit float64) float64
	ExecuteReactions()
}

var _ EventDrivenSolver = (*SSAStepper)(nil)

// SSAStepper performs Gillespie steps that advance the clock by the expected
// waiting time 1/a0 and record a0; the random waiting time is reconstructed
// later from the recorded trace.
type SSAStepper struct {
	reactions []Reaction
	rates     []float64 // current propensities, same order as reactions
	sampler   DistributionSampler
	duration  float64
}

// NewSSAStepper creates a stepper over the given reactions.
func NewSSAStepper(reactions []Reaction, sampler DistributionSampler, duration float64) *SSAStepper {
	return &SSAStepper{
		reactions: reactions,
		rates:     make([]float64, len(reactions)),
		sampler:   sampler,
		duration:  duration,
	}
}

// StepOnce fires one reaction. In an absorbing state (a0 == 0) the clock
// jumps to the duration and nothing is recorded.
func (s *SSAStepper) StepOnce(rc *RealizationContext) {
	a0 := s.updateRates()
	if a0 <= 0 {
		rc.Clock = s.duration
		return
	}

	r := s.sampler.Uniform01()

	tau := 1.0 / a0
	rc.Clock += tau
	rc.ExpectedTime += tau
	rc.ExpectedVariance += tau * tau

	mu := s.selectReaction(r * a0)
	s.reactions[mu].Fire()
	rc.Steps++

	rc.Lambda = append(rc.Lambda, a0)
}

// updateRates refreshes the propensity buffer and returns the total propensity.
func (s *SSAStepper) updateRates() float64 {
	a0 := 0.0
	for i, r := range s.reactions {
		av := r.Propensity()
		s.rates[i] = av
		a0 += av
	}
	return a0
}

// selectReaction returns the first index whose cumulative propensity reaches
// threshold. Zero-propensity reactions are never selected. If rounding leaves
// threshold positive after the last reaction, the last reaction with a
// non-zero propensity is chosen.
func (s *SSAStepper) selectReaction(threshold float64) int {
	if len(s.rates) != len(s.reactions) {
		panic(fmt.Sprintf("SSAStepper: rates size %d doesn't match reaction count %d", len(s.rates), len(s.reactions)))
	}
	last := 0
	for i, rate := range s.rates {
		if rate <= 0 {
			continue
		}
		last = i
		threshold -= rate
		if threshold <= 0 {
			return i
		}
	}
	return last
}
