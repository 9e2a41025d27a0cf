package sim

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// Partition is an ordered sequence of disjoint, non-empty propensity groups
// derived from one realization's trace. Group sizes sum to the trace length.
type Partition [][]float64

// Len returns the number of groups.
func (p Partition) Len() int { return len(p) }

// Size returns the total number of propensities across all groups.
func (p Partition) Size() int {
	n := 0
	for _, g := range p {
		n += len(g)
	}
	return n
}

// PartitionLambda groups the propensity trace by relative magnitude.
// Sorted in descending order, each group takes every remaining value within
// a factor (1 - epsilon) of the group maximum L:
//
//	epsilon = 1 => one group holding everything
//	epsilon = 0 => groups of exactly equal values (exact SSA reconstruction)
//
// The trace is consumed: lambda is sorted in place and the groups alias
// its backing array, so callers must not reuse it.
func PartitionLambda(lambda []float64, epsilon float64) Partition {
	slices.SortFunc(lambda, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})

	var groups Partition
	rest := lambda
	for len(rest) > 0 {
		x := rest[0] - rest[0]*epsilon
		// rest is sorted descending, so values >= x form a prefix
		n := 1
		for n < len(rest) && rest[n] >= x {
			n++
		}
		groups = append(groups, rest[:n:n])
		rest = rest[n:]
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		for i, g := range groups {
			logrus.Tracef("lambda group %d: size=%d max=%g min=%g", i, len(g), g[0], g[len(g)-1])
		}
	}
	return groups
}
