package sim

// ReconstructionStrategy selects how an exit time is sampled from a partition.
type ReconstructionStrategy string

const (
	// StrategyGroupedGamma draws one Gamma variate per group (approximate).
	StrategyGroupedGamma ReconstructionStrategy = "grouped-gamma"
	// StrategyExactExponential draws one exponential per propensity (exact).
	StrategyExactExponential ReconstructionStrategy = "exact-exponential"
)

// EfficiencyRatio returns rho = groups / traceLen, the fraction of random
// draws grouped-gamma needs compared with exact reconstruction.
func EfficiencyRatio(groups, traceLen int) float64 {
	if traceLen == 0 {
		return 0
	}
	return float64(groups) / float64(traceLen)
}

// SelectStrategy picks grouped-gamma when clustering reduced the draw count
// enough (rho <= cutoff) and exact-exponential otherwise.
func SelectStrategy(rho, cutoff float64) ReconstructionStrategy {
	if rho <= cutoff {
		return StrategyGroupedGamma
	}
	return StrategyExactExponential
}

// Sample draws one exit time from p using the given strategy.
func (rs ReconstructionStrategy) Sample(p Partition, s DistributionSampler) float64 {
	if rs == StrategyGroupedGamma {
		return SampleGroupedGamma(p, s)
	}
	return SampleExactExponential(p, s)
}

// SampleGroupedGamma approximates each group's sum of exponential waiting
// times by theta * Gamma(n, 1) with theta the mean of 1/v over the group.
// Consumes exactly p.Len() gamma draws.
func SampleGroupedGamma(p Partition, s DistributionSampler) float64 {
	tau := 0.0
	for _, group := range p {
		n := len(group)
		theta := 0.0
		for _, v := range group {
			theta += 1.0 / v
		}
		theta /= float64(n)
		tau += theta * s.StandardGamma(float64(n))
	}
	return tau
}

// SampleExactExponential sums one Exponential(v) draw per propensity, in
// partition order. No approximation bias.
func SampleExactExponential(p Partition, s DistributionSampler) float64 {
	tau := 0.0
	for _, group := range p {
		for _, v := range group {
			tau += s.Exponential(v)
		}
	}
	return tau
}
