package matching

import (
	"math"
	"strings"
	"time"
)

// Location similarity tiers.
const (
	locationExact    = 1.0
	locationContains = 0.7
	locationShared   = 0.4
	locationMismatch = 0.1
	locationMissing  = 0.3
)

// FeatureScorer computes the non-text similarity signals between two
// reports: category equality, the location heuristic, and date
// proximity. All methods are total; malformed input degrades to the
// documented neutral constants instead of failing.
type FeatureScorer struct {
	placeWords map[string]struct{}
}

// NewFeatureScorer creates a scorer from the given tables.
// A nil tables argument uses the embedded defaults.
func NewFeatureScorer(tables *Tables) *FeatureScorer {
	if tables == nil {
		tables = DefaultTables()
	}
	return &FeatureScorer{placeWords: tables.placeWordSet()}
}

// CategorySimilarity is binary: 1 for equal normalised categories,
// 0 otherwise. No partial credit.
func (s *FeatureScorer) CategorySimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	return 0
}

// LocationSimilarity compares two free-text locations case-insensitively:
// exact match 1.0, containment 0.7, a shared gazetteer word 0.4,
// otherwise 0.1. A missing location on either side scores 0.3; absence
// is weaker evidence against a match than a true mismatch.
func (s *FeatureScorer) LocationSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == "" || b == "" {
		return locationMissing
	}
	if a == b {
		return locationExact
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return locationContains
	}
	if s.sharePlaceWord(a, b) {
		return locationShared
	}
	return locationMismatch
}

// sharePlaceWord reports whether both locations mention at least one
// common gazetteer word.
func (s *FeatureScorer) sharePlaceWord(a, b string) bool {
	inA := make(map[string]struct{})
	for _, tok := range strings.Fields(a) {
		if _, ok := s.placeWords[tok]; ok {
			inA[tok] = struct{}{}
		}
	}
	if len(inA) == 0 {
		return false
	}
	for _, tok := range strings.Fields(b) {
		if _, ok := inA[tok]; ok {
			return true
		}
	}
	return false
}

// DateProximity maps the absolute day gap between two event dates onto
// fixed decay thresholds. Zero-valued dates count as unparseable and
// score the floor value.
func (s *FeatureScorer) DateProximity(a, b time.Time) float64 {
	if a.IsZero() || b.IsZero() {
		return 0.1
	}

	days := math.Abs(a.Sub(b).Hours()) / 24
	switch {
	case days <= 1:
		return 1.0
	case days <= 3:
		return 0.8
	case days <= 7:
		return 0.6
	case days <= 14:
		return 0.4
	case days <= 30:
		return 0.2
	default:
		return 0.1
	}
}
