package matching

import "sync/atomic"

// components is one immutable set of pipeline stages built from a
// single tables snapshot.
type components struct {
	norm   *Normalizer
	scorer *FeatureScorer
	ranker *Ranker
}

// Pipeline bundles the normaliser, feature scorer, and ranker built
// from one set of tables. Reload swaps in a new set atomically, so a
// matching pass in flight keeps a consistent snapshot while new passes
// pick up edited tables.
type Pipeline struct {
	current atomic.Pointer[components]
}

// NewPipeline builds a pipeline from the given tables.
// A nil tables argument uses the embedded defaults.
func NewPipeline(tables *Tables) *Pipeline {
	p := &Pipeline{}
	p.Reload(tables)
	return p
}

// Reload rebuilds all stages from new tables.
func (p *Pipeline) Reload(tables *Tables) {
	scorer := NewFeatureScorer(tables)
	p.current.Store(&components{
		norm:   NewNormalizer(tables),
		scorer: scorer,
		ranker: NewRanker(scorer),
	})
}

// Normalizer returns the current text normaliser.
func (p *Pipeline) Normalizer() *Normalizer {
	return p.current.Load().norm
}

// Scorer returns the current feature scorer.
func (p *Pipeline) Scorer() *FeatureScorer {
	return p.current.Load().scorer
}

// Ranker returns the current ranker.
func (p *Pipeline) Ranker() *Ranker {
	return p.current.Load().ranker
}
