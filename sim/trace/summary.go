package trace

import "gonum.org/v1/gonum/stat"

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalRealizations int
	EventMetCount     int
	TimeExceededCount int
	SkippedCount      int
	MeanSteps         float64
	MeanRho           float64 // over event-met realizations
	MaxGroups         int
	StrategyCounts    map[string]int // strategy name → count of event-met realizations
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		StrategyCounts: make(map[string]int),
	}
	if st == nil || len(st.Realizations) == 0 {
		return summary
	}

	summary.TotalRealizations = len(st.Realizations)
	steps := make([]float64, 0, len(st.Realizations))
	rhos := make([]float64, 0, len(st.Realizations))
	for _, r := range st.Realizations {
		switch r.Outcome {
		case OutcomeEventMet:
			summary.EventMetCount++
			summary.StrategyCounts[r.Strategy]++
			rhos = append(rhos, r.Rho)
			if r.Groups > summary.MaxGroups {
				summary.MaxGroups = r.Groups
			}
		case OutcomeTimeExceeded:
			summary.TimeExceededCount++
		case OutcomeSkipped:
			summary.SkippedCount++
			continue
		}
		steps = append(steps, float64(r.Steps))
	}

	if len(steps) > 0 {
		summary.MeanSteps = stat.Mean(steps, nil)
	}
	if len(rhos) > 0 {
		summary.MeanRho = stat.Mean(rhos, nil)
	}
	return summary
}
