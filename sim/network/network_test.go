package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sirYAML = `
species:
  - {name: S, initial: 990}
  - {name: I, initial: 10}
  - {name: R, initial: 0}
reactions:
  - name: infection
    rate: 0.0005
    reactants: {S: 1, I: 1}
    products: {I: 2}
  - name: recovery
    rate: 0.1
    reactants: {I: 1}
    products: {R: 1}
predicates:
  - {name: exitTimeEvent, species: R, op: ">=", value: 87}
  - {name: extinction, species: I, op: "==", value: 0}
`

func TestParse_BuildsNetwork(t *testing.T) {
	n, err := Parse([]byte(sirYAML))
	require.NoError(t, err)

	require.Len(t, n.Reactions(), 2)
	require.Len(t, n.Predicates(), 2)
	assert.Equal(t, "exitTimeEvent", n.Predicates()[0].Name())
	assert.Equal(t, "extinction", n.Predicates()[1].Name())

	// infection: 0.0005 · 990 · 10; recovery: 0.1 · 10
	assert.InDelta(t, 4.95, n.Reactions()[0].Propensity(), 1e-12)
	assert.InDelta(t, 1.0, n.Reactions()[1].Propensity(), 1e-12)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "species: []\nreaction: []\n"},
		{"unknown reactant", "species: [{name: A, initial: 1}]\nreactions: [{name: r, rate: 1, reactants: {B: 1}}]\n"},
		{"non-positive coefficient", "species: [{name: A, initial: 1}]\nreactions: [{name: r, rate: 1, reactants: {A: 0}}]\n"},
		{"negative rate", "species: [{name: A, initial: 1}]\nreactions: [{name: r, rate: -1}]\n"},
		{"duplicate species", "species: [{name: A, initial: 1}, {name: A, initial: 2}]\n"},
		{"negative initial", "species: [{name: A, initial: -1}]\n"},
		{"unknown predicate species", "species: [{name: A, initial: 1}]\npredicates: [{name: p, species: B, op: '==', value: 0}]\n"},
		{"unknown comparison", "species: [{name: A, initial: 1}]\npredicates: [{name: p, species: A, op: '=<', value: 0}]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestMassActionReaction_CombinatorialPropensity(t *testing.T) {
	n := New()
	require.NoError(t, n.AddSpecies("A", 5))
	dimer, err := n.AddReaction("dimerize", 2, map[string]int{"A": 2}, map[string]int{})
	require.NoError(t, err)

	// 2 · C(5,2) = 20
	assert.InDelta(t, 20, dimer.Propensity(), 1e-12)

	dimer.Fire()
	dimer.Fire()
	count, _ := n.Count("A")
	assert.Equal(t, int64(1), count)
	// C(1,2) = 0: not enough molecules
	assert.Equal(t, 0.0, dimer.Propensity())
}

func TestMassActionReaction_ZeroOrderSource(t *testing.T) {
	n := New()
	require.NoError(t, n.AddSpecies("P", 0))
	src, err := n.AddReaction("birth", 3.5, nil, map[string]int{"P": 1})
	require.NoError(t, err)
	assert.Equal(t, 3.5, src.Propensity())
	src.Fire()
	count, ok := n.Count("P")
	assert.True(t, ok)
	assert.Equal(t, int64(1), count)
}

func TestThresholdPredicate_LazyRecompute(t *testing.T) {
	n := New()
	require.NoError(t, n.AddSpecies("X", 0))
	inc, err := n.AddReaction("inc", 1, nil, map[string]int{"X": 1})
	require.NoError(t, err)
	p, err := n.AddPredicate("reached", "X", OpGreaterEqual, 2)
	require.NoError(t, err)

	// GIVEN repeated reads without state changes
	assert.False(t, p.Value())
	assert.False(t, p.Value())
	assert.False(t, p.Value())

	// THEN the predicate was evaluated once
	assert.Equal(t, 1, p.Evaluations())

	// WHEN the state changes
	inc.Fire()
	assert.False(t, p.Value())
	inc.Fire()
	assert.True(t, p.Value())
	assert.True(t, p.Value())
	assert.Equal(t, 3, p.Evaluations())
}

func TestThresholdPredicate_Comparisons(t *testing.T) {
	tests := []struct {
		op   Comparison
		want bool
	}{
		{OpEqual, false},
		{OpNotEqual, true},
		{OpGreaterEqual, true},
		{OpLessEqual, false},
		{OpGreater, true},
		{OpLess, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			n := New()
			require.NoError(t, n.AddSpecies("X", 5))
			p, err := n.AddPredicate("p", "X", tt.op, 4)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Value())
		})
	}
}

func TestNetwork_ResetRestoresInitialState(t *testing.T) {
	n, err := Parse([]byte(sirYAML))
	require.NoError(t, err)
	extinction := n.Predicates()[1]
	recovery := n.Reactions()[1]

	for i := 0; i < 10; i++ {
		recovery.Fire()
	}
	assert.True(t, extinction.Value())

	n.Reset()

	i, _ := n.Count("I")
	r, _ := n.Count("R")
	assert.Equal(t, int64(10), i)
	assert.Equal(t, int64(0), r)
	assert.False(t, extinction.Value(), "reset must invalidate cached predicate values")
}
