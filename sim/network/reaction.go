package network

// MassActionReaction fires with propensity k · Π C(x_s, n_s) over its reactants.
type MassActionReaction struct {
	name      string
	rate      float64
	reactants []term
	products  []term
	net       *Network
}

func (r *MassActionReaction) Name() string { return r.name }

// Propensity returns the combinatorial mass-action propensity; zero when any
// reactant count is below its coefficient.
func (r *MassActionReaction) Propensity() float64 {
	a := r.rate
	for _, t := range r.reactants {
		x := r.net.counts[t.species]
		if x < int64(t.coeff) {
			return 0
		}
		for i := 0; i < t.coeff; i++ {
			a *= float64(x-int64(i)) / float64(i+1)
		}
	}
	return a
}

// Fire applies the stoichiometry and invalidates cached predicate values.
func (r *MassActionReaction) Fire() {
	for _, t := range r.reactants {
		r.net.counts[t.species] -= int64(t.coeff)
	}
	for _, t := range r.products {
		r.net.counts[t.species] += int64(t.coeff)
	}
	r.net.version++
}
