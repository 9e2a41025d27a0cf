package trace

// TraceLevel controls the verbosity of realization tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelRealizations captures one record per realization.
	TraceLevelRealizations TraceLevel = "realizations"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:         true,
	TraceLevelRealizations: true,
	"":                     true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects realization records during an exit-time run.
type SimulationTrace struct {
	Config       TraceConfig
	Realizations []RealizationRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:       config,
		Realizations: make([]RealizationRecord, 0),
	}
}

// Enabled reports whether records should be collected.
// Safe for a nil trace.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelRealizations
}

// RecordRealization appends a realization record.
func (st *SimulationTrace) RecordRealization(record RealizationRecord) {
	st.Realizations = append(st.Realizations, record)
}
