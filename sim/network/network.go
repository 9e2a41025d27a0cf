// Package network implements sim.ReactionModel for mass-action reaction
// networks over integer species counts.
package network

import (
	"fmt"
	"sort"

	"github.com/inference-sim/exit-time-sim/sim"
)

// Network holds species counts, reactions and predicates. Every firing bumps
// version, which predicates use to decide whether their cached value is stale.
type Network struct {
	speciesIndex map[string]int
	names        []string
	counts       []int64
	initial      []int64
	version      uint64

	reactions  []*MassActionReaction
	predicates []*ThresholdPredicate
}

var _ sim.ReactionModel = (*Network)(nil)

// New creates an empty network.
func New() *Network {
	return &Network{speciesIndex: make(map[string]int)}
}

// AddSpecies registers a species with its initial count.
func (n *Network) AddSpecies(name string, initial int64) error {
	if _, ok := n.speciesIndex[name]; ok {
		return fmt.Errorf("duplicate species %q", name)
	}
	if initial < 0 {
		return fmt.Errorf("species %q: negative initial count %d", name, initial)
	}
	n.speciesIndex[name] = len(n.names)
	n.names = append(n.names, name)
	n.counts = append(n.counts, initial)
	n.initial = append(n.initial, initial)
	return nil
}

// AddReaction registers a mass-action reaction. Stoichiometry maps species
// names to coefficients.
func (n *Network) AddReaction(name string, rate float64, reactants, products map[string]int) (*MassActionReaction, error) {
	if rate < 0 {
		return nil, fmt.Errorf("reaction %q: negative rate %v", name, rate)
	}
	r := &MassActionReaction{name: name, rate: rate, net: n}
	var err error
	if r.reactants, err = n.stoichiometry(name, reactants); err != nil {
		return nil, err
	}
	if r.products, err = n.stoichiometry(name, products); err != nil {
		return nil, err
	}
	n.reactions = append(n.reactions, r)
	return r, nil
}

// AddPredicate registers a predicate comparing a species count to a value.
func (n *Network) AddPredicate(name, species string, op Comparison, value int64) (*ThresholdPredicate, error) {
	idx, ok := n.speciesIndex[species]
	if !ok {
		return nil, fmt.Errorf("predicate %q: unknown species %q", name, species)
	}
	if !validComparisons[op] {
		return nil, fmt.Errorf("predicate %q: unknown comparison %q", name, op)
	}
	p := &ThresholdPredicate{name: name, species: idx, op: op, value: value, net: n}
	n.predicates = append(n.predicates, p)
	return p, nil
}

// Count returns the current count of the named species.
func (n *Network) Count(species string) (int64, bool) {
	idx, ok := n.speciesIndex[species]
	if !ok {
		return 0, false
	}
	return n.counts[idx], true
}

// Reset restores the initial counts. Called before every realization.
func (n *Network) Reset() {
	copy(n.counts, n.initial)
	n.version++
}

// Reactions returns the reactions in registration order.
func (n *Network) Reactions() []sim.Reaction {
	out := make([]sim.Reaction, len(n.reactions))
	for i, r := range n.reactions {
		out[i] = r
	}
	return out
}

// Predicates returns the predicates in registration order.
func (n *Network) Predicates() []sim.Predicate {
	out := make([]sim.Predicate, len(n.predicates))
	for i, p := range n.predicates {
		out[i] = p
	}
	return out
}

type term struct {
	species int
	coeff   int
}

func (n *Network) stoichiometry(reaction string, m map[string]int) ([]term, error) {
	terms := make([]term, 0, len(m))
	for name, c := range m {
		idx, ok := n.speciesIndex[name]
		if !ok {
			return nil, fmt.Errorf("reaction %q: unknown species %q", reaction, name)
		}
		if c <= 0 {
			return nil, fmt.Errorf("reaction %q: coefficient of %q must be positive, got %d", reaction, name, c)
		}
		terms = append(terms, term{species: idx, coeff: c})
	}
	// fixed order keeps propensity products bit-for-bit reproducible
	sort.Slice(terms, func(i, j int) bool { return terms[i].species < terms[j].species })
	return terms, nil
}
