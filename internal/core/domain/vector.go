package domain

import "time"

// FeatureVector holds the derived matching features of a report.
// It is recomputed on demand and read-only for a given matching pass.
type FeatureVector struct {
	// ReportID is the owning report.
	ReportID string

	// Kind is the owning report's kind.
	Kind ReportKind

	// OwnerID is the owning report's owner, kept for requester exclusion.
	OwnerID string

	// Tokens is the normalised token multiset used for term frequencies.
	// Repetition counts are preserved; downstream TF depends on them.
	Tokens []string

	// Category is the normalised category.
	Category string

	// Location is the raw location string.
	Location string

	// EventDate is the report's event date.
	EventDate time.Time
}

// IDFTable maps token to inverse-document-frequency weight.
// Valid only for the corpus snapshot it was built from; tokens absent
// from the table carry an implicit weight of 1.
type IDFTable map[string]float64

// Weight returns the IDF weight for a token, defaulting to 1 for
// tokens unseen in the corpus.
func (t IDFTable) Weight(token string) float64 {
	if t == nil {
		return 1
	}
	if w, ok := t[token]; ok {
		return w
	}
	return 1
}
