package services

// processedSet tracks which report IDs the monitor has evaluated this
// process lifetime. It is a volatile optimisation, not a durable
// invariant: persisted matches remain the source of truth, so evicting
// an entry can at worst cause a redundant store check. The set is
// bounded FIFO to keep long uptimes from growing it without limit.
// Callers synchronise access.
type processedSet struct {
	limit int
	ids   map[string]struct{}
	order []string
}

// defaultProcessedLimit bounds the processed cache.
const defaultProcessedLimit = 10000

func newProcessedSet(limit int) *processedSet {
	if limit <= 0 {
		limit = defaultProcessedLimit
	}
	return &processedSet{
		limit: limit,
		ids:   make(map[string]struct{}),
	}
}

// add records an ID, evicting the oldest entry when over the limit.
func (p *processedSet) add(id string) {
	if _, ok := p.ids[id]; ok {
		return
	}
	p.ids[id] = struct{}{}
	p.order = append(p.order, id)
	if len(p.order) > p.limit {
		oldest := p.order[0]
		p.order = p.order[1:]
		delete(p.ids, oldest)
	}
}

// has reports whether an ID has been evaluated.
func (p *processedSet) has(id string) bool {
	_, ok := p.ids[id]
	return ok
}

// size returns the number of tracked IDs.
func (p *processedSet) size() int {
	return len(p.ids)
}

// clear forgets all tracked IDs.
func (p *processedSet) clear() {
	p.ids = make(map[string]struct{})
	p.order = nil
}
