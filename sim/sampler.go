package sim

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DistributionSampler supplies the random variates consumed by the stepper
// and the time reconstruction samplers. All draws come from one logical
// sequence, so call order determines every downstream value.
type DistributionSampler interface {
	// Uniform01 returns a draw from Uniform[0,1).
	Uniform01() float64
	// Exponential returns a draw with the given rate (mean 1/rate).
	Exponential(rate float64) float64
	// StandardGamma returns a Gamma(shape, 1) draw.
	StandardGamma(shape float64) float64
}

// GonumSampler implements DistributionSampler on top of gonum's distuv
// distributions, all sharing a single bit source.
type GonumSampler struct {
	src     rand.Source
	uniform distuv.Uniform
}

// NewGonumSampler creates a sampler drawing from src.
func NewGonumSampler(src rand.Source) *GonumSampler {
	return &GonumSampler{
		src:     src,
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
	}
}

// NewSeededSampler creates a sampler on the SSA subsystem stream of rng.
func NewSeededSampler(rng *PartitionedRNG) *GonumSampler {
	return NewGonumSampler(rng.ForSubsystem(SubsystemSSA))
}

func (s *GonumSampler) Uniform01() float64 {
	return s.uniform.Rand()
}

func (s *GonumSampler) Exponential(rate float64) float64 {
	return distuv.Exponential{Rate: rate, Src: s.src}.Rand()
}

func (s *GonumSampler) StandardGamma(shape float64) float64 {
	return distuv.Gamma{Alpha: shape, Beta: 1, Src: s.src}.Rand()
}
