// Package testutil provides shared test infrastructure for the exit-time
// simulator: float comparisons and Monte Carlo tolerance assertions used
// across sim/ and its sub-packages.
package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertMeanWithinStdErr checks that the sample mean lies within k standard
// errors of want. Returns the sample mean.
func AssertMeanWithinStdErr(t *testing.T, name string, samples []float64, want, k float64) float64 {
	t.Helper()
	if len(samples) < 2 {
		t.Fatalf("%s: need at least 2 samples, got %d", name, len(samples))
	}
	mean, std := stat.MeanStdDev(samples, nil)
	se := stat.StdErr(std, float64(len(samples)))
	if math.Abs(mean-want) > k*se {
		t.Errorf("%s: mean %v, want %v ± %v (%v standard errors of %v)", name, mean, want, k*se, k, se)
	}
	return mean
}
