package sim

// Reaction is one channel of the reaction network. Propensity is recomputed
// from the current system state on every call; Fire mutates that state.
type Reaction interface {
	Propensity() float64
	Fire()
}

// Predicate is a named boolean condition over system state. Implementations
// may cache Value and recompute it lazily after the state changes.
type Predicate interface {
	Name() string
	Value() bool
}

// ReactionModel exposes the reactions in a fixed order together with the
// predicates that can serve as exit-time events.
type ReactionModel interface {
	Reactions() []Reaction
	Predicates() []Predicate
}

// Resettable is implemented by models that restore their initial state.
// The solver resets such models before every realization.
type Resettable interface {
	Reset()
}

// findPredicate resolves a predicate by name. Called once at solver setup.
func findPredicate(model ReactionModel, name string) (Predicate, bool) {
	for _, p := range model.Predicates() {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}
