package matching

import (
	"math"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

// TermFrequency builds a length-normalised TF vector: each token's
// occurrence count divided by the total token count. An empty token
// list yields an empty vector.
func TermFrequency(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return map[string]float64{}
	}

	counts := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	total := float64(len(tokens))
	for tok, c := range counts {
		counts[tok] = c / total
	}
	return counts
}

// IDF computes inverse document frequencies over a corpus of token
// lists: ln(totalDocuments / documentsContainingToken) per distinct
// token. Lookups for unseen tokens fall back to 1 via IDFTable.Weight.
func IDF(corpus [][]string) domain.IDFTable {
	table := make(domain.IDFTable)
	if len(corpus) == 0 {
		return table
	}

	docCounts := make(map[string]int)
	for _, tokens := range corpus {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			docCounts[tok]++
		}
	}

	total := float64(len(corpus))
	for tok, df := range docCounts {
		table[tok] = math.Log(total / float64(df))
	}
	return table
}

// TFIDFVector weights a token list's TF vector by a corpus IDF table.
// Tokens missing from the table keep an implicit IDF of 1.
func TFIDFVector(tokens []string, idf domain.IDFTable) map[string]float64 {
	vec := TermFrequency(tokens)
	for tok, tf := range vec {
		vec[tok] = tf * idf.Weight(tok)
	}
	return vec
}

// CosineSimilarity computes the normalised dot product of two sparse
// vectors. It returns exactly 0 when either vector is empty or has
// zero magnitude, is symmetric, and stays within [0,1] for
// non-negative weights.
func CosineSimilarity(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Iterate the smaller vector for the dot product.
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	var dot float64
	for tok, w := range small {
		if lw, ok := large[tok]; ok {
			dot += w * lw
		}
	}
	if dot == 0 {
		return 0
	}

	var magA, magB float64
	for _, w := range a {
		magA += w * w
	}
	for _, w := range b {
		magB += w * w
	}
	if magA == 0 || magB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(magA) * math.Sqrt(magB))

	// Clamp float drift so callers can rely on the [0,1] contract.
	if sim > 1 {
		return 1
	}
	if sim < 0 {
		return 0
	}
	return sim
}
