package sim

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Campaign repeats realizations of one solver sequentially.
type Campaign struct {
	Solver       *ExitTimeSolver
	Realizations int
	RunID        string
}

// NewCampaign creates a campaign with a fresh run ID and stamps the solver with it.
func NewCampaign(solver *ExitTimeSolver, realizations int) *Campaign {
	runID := uuid.NewString()
	solver.RunID = runID
	return &Campaign{Solver: solver, Realizations: realizations, RunID: runID}
}

// Run executes all realizations and returns the solver's metrics.
func (c *Campaign) Run() *ExitTimeMetrics {
	log := logrus.WithField("run_id", c.RunID)
	log.Infof("starting %d realizations", c.Realizations)

	counts := make(map[Outcome]int, 3)
	for i := 0; i < c.Realizations; i++ {
		counts[c.Solver.SolveOnce()]++
	}

	m := c.Solver.Metrics
	log.WithFields(logrus.Fields{
		"event_met":     counts[OutcomeEventMet],
		"time_exceeded": counts[OutcomeTimeExceeded],
		"skipped":       counts[OutcomeSkipped],
	}).Infof("finished: P(event) = %v, mean groups = %v", m.SuccessProbability(), m.MeanGroupCount())
	return m
}
