package sim

// constReaction has a fixed propensity and counts its firings.
type constReaction struct {
	rate  float64
	fired int
}

func (r *constReaction) Propensity() float64 { return r.rate }
func (r *constReaction) Fire()               { r.fired++ }

// funcPredicate evaluates fn on every call.
type funcPredicate struct {
	name string
	fn   func() bool
}

func (p *funcPredicate) Name() string { return p.name }
func (p *funcPredicate) Value() bool  { return p.fn() }

// fakeModel is a ReactionModel of constant-rate reactions that resets the
// firing counters before each realization.
type fakeModel struct {
	reactions  []*constReaction
	predicates []Predicate
	resets     int
}

func (m *fakeModel) Reactions() []Reaction {
	out := make([]Reaction, len(m.reactions))
	for i, r := range m.reactions {
		out[i] = r
	}
	return out
}

func (m *fakeModel) Predicates() []Predicate { return m.predicates }

func (m *fakeModel) Reset() {
	for _, r := range m.reactions {
		r.fired = 0
	}
	m.resets++
}

// newTwoReactionModel builds r1=2.0, r2=3.0 with the predicate
// "reaction 1 fired at least threshold times" registered as exitTimeEvent.
func newTwoReactionModel(threshold int) *fakeModel {
	m := &fakeModel{reactions: []*constReaction{{rate: 2.0}, {rate: 3.0}}}
	m.predicates = []Predicate{
		&funcPredicate{name: "other", fn: func() bool { return false }},
		&funcPredicate{name: DefaultEventName, fn: func() bool { return m.reactions[0].fired >= threshold }},
	}
	return m
}

// scriptedSampler replays fixed uniforms and counts every draw by kind.
type scriptedSampler struct {
	uniforms []float64
	gammaVal float64
	expVal   float64

	uniformDraws int
	expRates     []float64
	gammaShapes  []float64
}

func (s *scriptedSampler) Uniform01() float64 {
	u := 0.0
	if len(s.uniforms) > 0 {
		u = s.uniforms[s.uniformDraws%len(s.uniforms)]
	}
	s.uniformDraws++
	return u
}

func (s *scriptedSampler) Exponential(rate float64) float64 {
	s.expRates = append(s.expRates, rate)
	return s.expVal
}

func (s *scriptedSampler) StandardGamma(shape float64) float64 {
	s.gammaShapes = append(s.gammaShapes, shape)
	return s.gammaVal
}

// countingSampler wraps a real sampler and counts draws by kind.
type countingSampler struct {
	inner                          DistributionSampler
	uniforms, exponentials, gammas int
}

func (c *countingSampler) Uniform01() float64 {
	c.uniforms++
	return c.inner.Uniform01()
}

func (c *countingSampler) Exponential(rate float64) float64 {
	c.exponentials++
	return c.inner.Exponential(rate)
}

func (c *countingSampler) StandardGamma(shape float64) float64 {
	c.gammas++
	return c.inner.StandardGamma(shape)
}

func newTestSampler(seed int64) *GonumSampler {
	return NewSeededSampler(NewPartitionedRNG(NewSimulationKey(seed)))
}
