// Package trace provides per-realization outcome recording for exit-time runs.
// This package has no dependencies on sim/ and stores pure data types.
package trace

// Outcome is the terminal state of one realization.
type Outcome string

const (
	OutcomeEventMet     Outcome = "event-met"
	OutcomeTimeExceeded Outcome = "time-exceeded"
	OutcomeSkipped      Outcome = "skipped" // calibration mode after the first hit
)

// RealizationRecord captures how a single realization ended and, when the
// event fired, how its exit time was reconstructed.
type RealizationRecord struct {
	RunID     string
	Index     int
	Outcome   Outcome
	Steps     int
	Clock     float64 // simulated clock when the realization stopped
	Groups    int     // partition size (0 unless event met)
	Rho       float64 // groups / trace length (0 unless event met)
	Strategy  string  // reconstruction strategy name ("" unless event met)
	Samples   int     // exit-time samples appended by this realization
	FirstTime float64 // first appended sample, 0 if none
}
