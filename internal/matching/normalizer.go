package matching

import (
	"fmt"
	"regexp"
	"strings"
)

// nonWord matches every run of characters outside [a-z0-9] after
// lowercasing; each run collapses to a single space.
var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// Normalizer turns raw free text into the canonical token multiset
// consumed by the vector model. All tables are fixed at construction.
type Normalizer struct {
	stopwords  map[string]struct{}
	synonyms   map[string][]string
	categories map[string]string
}

// NewNormalizer creates a normaliser from the given tables.
// A nil tables argument uses the embedded defaults.
func NewNormalizer(tables *Tables) *Normalizer {
	if tables == nil {
		tables = DefaultTables()
	}

	// Synonym keys and variants are stemmed up front so the table can
	// use natural words while lookups happen post-stemming.
	synonyms := make(map[string][]string, len(tables.Synonyms))
	for key, variants := range tables.Synonyms {
		stemmed := make([]string, 0, len(variants))
		for _, v := range variants {
			stemmed = append(stemmed, stem(strings.ToLower(v)))
		}
		synonyms[stem(strings.ToLower(key))] = stemmed
	}

	return &Normalizer{
		stopwords:  tables.stopwordSet(),
		synonyms:   synonyms,
		categories: tables.aliasIndex(),
	}
}

// Tokens runs the full normalisation pipeline and returns the token
// multiset for term-frequency input: stemmed unigrams, their synonym
// expansions, and adjacent-pair bigrams built from the pre-expansion
// stem sequence. Repetition counts are preserved. Empty or unusable
// input yields an empty slice; this function never panics upward.
func (n *Normalizer) Tokens(text string) (tokens []string) {
	defer func() {
		if r := recover(); r != nil {
			tokens = fallbackTokens(text)
		}
	}()

	stems := n.stems(text)
	if len(stems) == 0 {
		return nil
	}

	tokens = make([]string, 0, len(stems)*2)
	tokens = append(tokens, stems...)

	// Synonym expansion is additive: originals stay in the multiset.
	for _, s := range stems {
		tokens = append(tokens, n.synonyms[s]...)
	}

	// Bigrams come from the pre-expansion stem sequence.
	for i := 0; i+1 < len(stems); i++ {
		tokens = append(tokens, stems[i]+"_"+stems[i+1])
	}

	return tokens
}

// stems runs steps 1-4 of the pipeline: clean, tokenise, filter
// short tokens and stopwords, stem.
func (n *Normalizer) stems(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	var stems []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) <= 1 {
			continue
		}
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		stems = append(stems, stem(tok))
	}
	return stems
}

// fallbackTokens is the degraded path: lowercase, punctuation strip,
// whitespace split, length filter only.
func fallbackTokens(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")
	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) > 1 {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// NormalizeCategory maps any value onto the fixed category set.
// Non-strings are stringified first; unmatched or empty input yields
// "other". The function is total and idempotent.
func (n *Normalizer) NormalizeCategory(value any) string {
	var raw string
	switch v := value.(type) {
	case nil:
		return "other"
	case string:
		raw = v
	default:
		raw = fmt.Sprint(v)
	}

	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "other"
	}
	if canonical, ok := n.categories[raw]; ok {
		return canonical
	}
	return "other"
}

// stem reduces a token to a canonical root. It is a deliberately small
// Porter-style suffix stripper: deterministic, total, and shared by
// both engine modes so vocabularies always align.
func stem(word string) string {
	if len(word) < 3 {
		return word
	}

	// Plural forms.
	switch {
	case strings.HasSuffix(word, "sses"):
		word = word[:len(word)-2]
	case strings.HasSuffix(word, "ies"):
		word = word[:len(word)-2]
	case strings.HasSuffix(word, "ss"):
		// keep
	case strings.HasSuffix(word, "s"):
		word = word[:len(word)-1]
	}

	// Past and progressive forms.
	switch {
	case strings.HasSuffix(word, "eed"):
		word = word[:len(word)-1]
	case strings.HasSuffix(word, "ed") && len(word) > 4:
		word = word[:len(word)-2]
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		word = word[:len(word)-3]
	}

	// Derivational suffixes.
	switch {
	case strings.HasSuffix(word, "ization"):
		word = word[:len(word)-5] + "ize"
	case strings.HasSuffix(word, "ational"):
		word = word[:len(word)-5] + "ate"
	case strings.HasSuffix(word, "fulness"):
		word = word[:len(word)-4]
	case strings.HasSuffix(word, "ousness"):
		word = word[:len(word)-4]
	case strings.HasSuffix(word, "iveness"):
		word = word[:len(word)-4]
	}

	return word
}
