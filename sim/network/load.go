package network

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is the YAML description of a reaction network.
type Spec struct {
	Species    []SpeciesSpec   `yaml:"species"`
	Reactions  []ReactionSpec  `yaml:"reactions"`
	Predicates []PredicateSpec `yaml:"predicates"`
}

// SpeciesSpec declares one species and its initial count.
type SpeciesSpec struct {
	Name    string `yaml:"name"`
	Initial int64  `yaml:"initial"`
}

// ReactionSpec declares one mass-action reaction.
type ReactionSpec struct {
	Name      string         `yaml:"name"`
	Rate      float64        `yaml:"rate"`
	Reactants map[string]int `yaml:"reactants"`
	Products  map[string]int `yaml:"products"`
}

// PredicateSpec declares a threshold predicate, e.g. {name: exitTimeEvent, species: R, op: "==", value: 87}.
type PredicateSpec struct {
	Name    string     `yaml:"name"`
	Species string     `yaml:"species"`
	Op      Comparison `yaml:"op"`
	Value   int64      `yaml:"value"`
}

// Load reads a network description file.
func Load(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model: %w", err)
	}
	return Parse(data)
}

// Parse builds a network from YAML. Unknown fields are errors.
func Parse(data []byte) (*Network, error) {
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing model: %w", err)
	}
	return spec.Build()
}

// Build creates the network described by s.
func (s *Spec) Build() (*Network, error) {
	n := New()
	for _, sp := range s.Species {
		if err := n.AddSpecies(sp.Name, sp.Initial); err != nil {
			return nil, err
		}
	}
	for _, r := range s.Reactions {
		if _, err := n.AddReaction(r.Name, r.Rate, r.Reactants, r.Products); err != nil {
			return nil, err
		}
	}
	for _, p := range s.Predicates {
		if _, err := n.AddPredicate(p.Name, p.Species, p.Op, p.Value); err != nil {
			return nil, err
		}
	}
	return n, nil
}
