// Package sim provides the exit-time (hitting-time) estimation core for
// continuous-time Markov jump processes driven by competing reactions.
//
// # Reading Guide
//
// Start with these files to understand the estimation pipeline:
//   - stepper.go: one SSA jump that records the total propensity instead of drawing a waiting time
//   - partition.go: grouping of a realization's propensity trace by relative magnitude
//   - reconstruct.go: grouped-gamma and exact-exponential exit-time samplers and the rho policy
//   - exit_times.go: the per-realization run controller, including calibration mode
//   - metrics.go: aggregation across realizations and the text report
//
// # Architecture
//
// The sim package defines the interfaces it consumes; implementations live in
// sub-packages or are supplied by the caller:
//   - sim/network/: YAML-described mass-action reaction networks (ReactionModel)
//   - sim/trace/: per-realization outcome recording
//
// # Key Interfaces
//
//   - ReactionModel: ordered reactions plus named predicates over system state
//   - DistributionSampler: uniform, exponential and standard gamma draws
//   - EventDrivenSolver: single-reaction SSA stepping (the only capability implemented here)
//   - TauLeapingSolver: generic step-size / batch execution, deliberately not implemented
package sim
