package network

// Comparison is the relational operator of a ThresholdPredicate.
type Comparison string

const (
	OpEqual        Comparison = "=="
	OpNotEqual     Comparison = "!="
	OpGreaterEqual Comparison = ">="
	OpLessEqual    Comparison = "<="
	OpGreater      Comparison = ">"
	OpLess         Comparison = "<"
)

var validComparisons = map[Comparison]bool{
	OpEqual: true, OpNotEqual: true, OpGreaterEqual: true,
	OpLessEqual: true, OpGreater: true, OpLess: true,
}

// ThresholdPredicate compares one species count with a constant. The value
// is recomputed only when the network state changed since the last call.
type ThresholdPredicate struct {
	name    string
	species int
	op      Comparison
	value   int64
	net     *Network

	cached  bool
	valid   bool
	version uint64
	evals   int
}

func (p *ThresholdPredicate) Name() string { return p.name }

// Value returns the predicate on the current state.
func (p *ThresholdPredicate) Value() bool {
	if p.valid && p.version == p.net.version {
		return p.cached
	}
	p.cached = p.evaluate(p.net.counts[p.species])
	p.version = p.net.version
	p.valid = true
	p.evals++
	return p.cached
}

// Evaluations returns how many times the predicate was actually recomputed.
func (p *ThresholdPredicate) Evaluations() int { return p.evals }

func (p *ThresholdPredicate) evaluate(x int64) bool {
	switch p.op {
	case OpEqual:
		return x == p.value
	case OpNotEqual:
		return x != p.value
	case OpGreaterEqual:
		return x >= p.value
	case OpLessEqual:
		return x <= p.value
	case OpGreater:
		return x > p.value
	case OpLess:
		return x < p.value
	}
	return false
}
