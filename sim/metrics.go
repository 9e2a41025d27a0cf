// Aggregates exit-time results across realizations and writes the run report.

package sim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ExitTimeMetrics accumulates results across all realizations of a run.
type ExitTimeMetrics struct {
	Realizations  int       // realizations attempted, including censored and skipped ones
	ExitTimes     []float64 // exit-time samples in the order computed; 0 when the event already holds at t=0
	GroupCountSum float64   // Σ partition sizes (standard) or the single trace's size (calibration)
	Epsilon       float64
	Calibration   bool
}

// NewExitTimeMetrics creates an empty accumulator.
func NewExitTimeMetrics(epsilon float64, calibration bool) *ExitTimeMetrics {
	return &ExitTimeMetrics{
		ExitTimes:   make([]float64, 0),
		Epsilon:     epsilon,
		Calibration: calibration,
	}
}

// SuccessProbability estimates P(event before duration) as
// samples / realizations attempted.
func (m *ExitTimeMetrics) SuccessProbability() float64 {
	if m.Realizations == 0 {
		return 0
	}
	return float64(len(m.ExitTimes)) / float64(m.Realizations)
}

// MeanGroupCount returns the mean partition size per accepted realization.
// The sum mixes grouped-gamma and exact-exponential realizations alike.
// In calibration mode the single trace's group count is returned as is.
func (m *ExitTimeMetrics) MeanGroupCount() float64 {
	if m.Calibration {
		return m.GroupCountSum
	}
	if len(m.ExitTimes) == 0 {
		return 0
	}
	return m.GroupCountSum / float64(len(m.ExitTimes))
}

// ReportFileName derives the report path from prefix and epsilon.
// Standard runs write <prefix>ExitTimes<epsilon>.txt, calibration runs
// <prefix><epsilon>.txt.
func (m *ExitTimeMetrics) ReportFileName(prefix string) string {
	eps := strconv.FormatFloat(m.Epsilon, 'g', -1, 64)
	if m.Calibration {
		return prefix + eps + ".txt"
	}
	return prefix + "ExitTimes" + eps + ".txt"
}

// WriteReport writes the banner, the four summary lines and one sample per line.
func (m *ExitTimeMetrics) WriteReport(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "FrameworkVersion,%q,%q\n", Version, " "+Description)
	fmt.Fprintf(bw, "No. of realizations: %d\n", m.Realizations)
	fmt.Fprintf(bw, "Event probability estimate: %v\n", m.SuccessProbability())
	fmt.Fprintf(bw, "Mean Number of Gamma RNs: %v\n", m.MeanGroupCount())
	for _, t := range m.ExitTimes {
		fmt.Fprintf(bw, "%v\n", t)
	}
	return bw.Flush()
}

// OutputData writes the report to the file derived from prefix and returns
// its path. The file is closed before OutputData returns.
func (s *ExitTimeSolver) OutputData(prefix string) (path string, err error) {
	path = s.Metrics.ReportFileName(prefix)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing report %s: %w", path, closeErr)
		}
	}()
	if err := s.Metrics.WriteReport(file); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	return path, nil
}
