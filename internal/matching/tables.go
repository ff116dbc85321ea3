package matching

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Tables holds the data tables driving text normalisation and the
// location heuristic. They are injected at construction so deployments
// can override them from configuration without a rebuild.
type Tables struct {
	// Stopwords are dropped during tokenisation.
	Stopwords []string `toml:"stopwords"`

	// Synonyms maps a stemmed token to variants appended during
	// expansion. Expansion is additive; originals are retained.
	Synonyms map[string][]string `toml:"synonyms"`

	// Categories maps each canonical category to its accepted aliases.
	Categories map[string][]string `toml:"categories"`

	// PlaceWords is the gazetteer of common place words used by the
	// location similarity heuristic.
	PlaceWords []string `toml:"place_words"`
}

// ParseTables decodes a TOML document into Tables.
func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse matching tables: %w", err)
	}
	return &t, nil
}

var (
	defaultTablesOnce sync.Once
	defaultTables     *Tables
)

// DefaultTables returns the built-in tables embedded in the binary.
func DefaultTables() *Tables {
	defaultTablesOnce.Do(func() {
		t, err := ParseTables(defaultsTOML)
		if err != nil {
			// The embedded defaults are fixed at build time; a parse
			// failure here is a programming error.
			panic(err)
		}
		defaultTables = t
	})
	return defaultTables
}

// stopwordSet builds a lookup set from the stopword list.
func (t *Tables) stopwordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(t.Stopwords))
	for _, w := range t.Stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// placeWordSet builds a lookup set from the gazetteer.
func (t *Tables) placeWordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(t.PlaceWords))
	for _, w := range t.PlaceWords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// aliasIndex maps every lowercased alias (and the canonical name
// itself) to its canonical category.
func (t *Tables) aliasIndex() map[string]string {
	idx := make(map[string]string)
	for canonical, aliases := range t.Categories {
		idx[strings.ToLower(canonical)] = canonical
		for _, a := range aliases {
			idx[strings.ToLower(a)] = canonical
		}
	}
	return idx
}
