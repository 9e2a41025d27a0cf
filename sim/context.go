package sim

// RealizationContext holds the mutable state of exactly one realization.
// A fresh context is created for every realization, so nothing recorded
// here can leak into the next one.
type RealizationContext struct {
	Clock            float64   // simulated time, advanced by expected waiting times
	ExpectedTime     float64   // running E[t] = Σ 1/a0
	ExpectedVariance float64   // running Var[t] = Σ 1/a0²
	Lambda           []float64 // total propensity recorded at each firing
	Steps            int       // number of reactions fired
}

// NewRealizationContext returns an empty context.
func NewRealizationContext() *RealizationContext {
	return &RealizationContext{Lambda: make([]float64, 0, 64)}
}
