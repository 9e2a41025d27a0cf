package sim

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestExitTimeMetrics_SuccessProbabilityAndMeanGroups(t *testing.T) {
	m := NewExitTimeMetrics(0.5, false)
	assert.Equal(t, 0.0, m.SuccessProbability(), "no realizations yet")

	m.Realizations = 8
	m.ExitTimes = []float64{1, 2}
	m.GroupCountSum = 7
	assert.Equal(t, 0.25, m.SuccessProbability())
	assert.Equal(t, 3.5, m.MeanGroupCount())

	// calibration mode reports the single trace's group count unnormalized
	m.Calibration = true
	assert.Equal(t, 7.0, m.MeanGroupCount())
}

func TestExitTimeMetrics_ReportFileName(t *testing.T) {
	tests := []struct {
		name        string
		epsilon     float64
		calibration bool
		want        string
	}{
		{"standard default epsilon", 0.5, false, "out/sirExitTimes0.5.txt"},
		{"standard exact", 0, false, "out/sirExitTimes0.txt"},
		{"standard loosest", 1, false, "out/sirExitTimes1.txt"},
		{"calibration", 0.25, true, "out/sir0.25.txt"},
		{"calibration exact", 0, true, "out/sir0.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewExitTimeMetrics(tt.epsilon, tt.calibration)
			assert.Equal(t, tt.want, m.ReportFileName("out/sir"))
		})
	}
}

func TestExitTimeMetrics_WriteReport_Golden(t *testing.T) {
	// GIVEN 3 accepted samples out of 4 realizations and 6 groups in total
	m := NewExitTimeMetrics(0.5, false)
	m.Realizations = 4
	m.ExitTimes = []float64{0.25, 1.5, 3}
	m.GroupCountSum = 6

	// WHEN the report is written
	var buf bytes.Buffer
	if err := m.WriteReport(&buf); err != nil {
		t.Fatal(err)
	}

	// THEN it matches testdata/report_standard.golden
	g := goldie.New(t)
	g.Assert(t, "report_standard", buf.Bytes())
}
