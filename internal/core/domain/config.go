package domain

import (
	"fmt"
	"time"
)

// Default matching configuration values.
const (
	DefaultTopK         = 10
	DefaultMinScore     = 0.1
	DefaultTickInterval = 5 * time.Minute
)

// Weights distributes the fused score across the four signals.
// Callers are responsible for weights summing to 1.0; the engine
// does not renormalise.
type Weights struct {
	Text     float64
	Category float64
	Location float64
	Date     float64
}

// DefaultWeights returns the standard signal weighting.
func DefaultWeights() Weights {
	return Weights{Text: 0.6, Category: 0.2, Location: 0.15, Date: 0.05}
}

// Validate rejects negative weights.
func (w Weights) Validate() error {
	if w.Text < 0 || w.Category < 0 || w.Location < 0 || w.Date < 0 {
		return fmt.Errorf("%w: weights must be non-negative", ErrInvalidInput)
	}
	return nil
}

// SearchOptions configures a free-text search.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero means DefaultTopK.
	Limit int

	// MinScore drops results below this threshold.
	MinScore float64
}

// MatchConfig configures a matching pass.
type MatchConfig struct {
	// Weights distributes the fused score across signals.
	Weights Weights

	// TopK is the maximum number of results returned.
	// Truncation to TopK happens before the MinScore filter.
	TopK int

	// MinScore drops results below this threshold.
	MinScore float64

	// ExcludeOwnerID drops candidates owned by this user.
	ExcludeOwnerID string
}

// DefaultMatchConfig returns the standard configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Weights:  DefaultWeights(),
		TopK:     DefaultTopK,
		MinScore: DefaultMinScore,
	}
}

// Normalise fills zero-valued fields with defaults and validates.
func (c MatchConfig) Normalise() (MatchConfig, error) {
	if c.TopK <= 0 {
		c.TopK = DefaultTopK
	}
	if c.MinScore <= 0 {
		c.MinScore = DefaultMinScore
	}
	zero := Weights{}
	if c.Weights == zero {
		c.Weights = DefaultWeights()
	}
	if err := c.Weights.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
