package domain

import "time"

// Confidence is the coarse classification of a match score.
type Confidence string

// Available confidence buckets.
const (
	// ConfidenceHigh is a score of 0.7 or above.
	ConfidenceHigh Confidence = "high"

	// ConfidenceMedium is a score of 0.4 or above.
	ConfidenceMedium Confidence = "medium"

	// ConfidenceLow is anything below 0.4.
	ConfidenceLow Confidence = "low"
)

// ConfidenceFor buckets a fused score.
func ConfidenceFor(score float64) Confidence {
	switch {
	case score >= 0.7:
		return ConfidenceHigh
	case score >= 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Breakdown holds the per-signal similarity scores, each in [0,1].
type Breakdown struct {
	Text     float64
	Category float64
	Location float64
	Date     float64
}

// Match is the persisted relationship between exactly one lost report
// and one found report. At most one Match exists per (lost, found) pair;
// the match store enforces this, not the score.
type Match struct {
	// ID is the unique identifier for the match.
	ID string

	// LostReportID references the lost report.
	LostReportID string

	// FoundReportID references the found report.
	FoundReportID string

	// Score is the fused similarity, in [0,1]. Write-once.
	Score float64

	// Confidence is the bucket derived from Score. Write-once.
	Confidence Confidence

	// Breakdown holds the per-signal scores. Write-once.
	Breakdown Breakdown

	// Notified is true once the owners have been told about the match.
	Notified bool

	// Contacted is true once one party has contacted the other.
	Contacted bool

	// CreatedAt is when the monitor discovered the pairing.
	CreatedAt time.Time
}

// MatchResult is a single ranked hit from a matching pass.
// Unlike Match it is not persisted; the monitor decides persistence.
type MatchResult struct {
	// Report is the matched opposite-kind report.
	Report Report

	// Score is the fused similarity, rounded to 3 decimals.
	Score float64

	// Confidence is the bucket derived from Score.
	Confidence Confidence

	// Breakdown holds the per-signal scores.
	Breakdown Breakdown
}

// SearchResult is a single hit from a free-text search, tagged with
// the kind of report it came from.
type SearchResult struct {
	// Report is the matched report.
	Report Report

	// Kind is the source kind of the report.
	Kind ReportKind

	// Score is the text similarity, rounded to 3 decimals.
	Score float64
}

// CorpusStats describes the state of the batch-mode corpus.
type CorpusStats struct {
	// Trained is true once Initialize has completed.
	Trained bool

	// LostCount is the number of open lost reports in the snapshot.
	LostCount int

	// FoundCount is the number of open found reports in the snapshot.
	FoundCount int

	// VocabularySize is the number of distinct tokens in the IDF table.
	VocabularySize int
}

// MonitorStatus describes the monitor's current state.
type MonitorStatus struct {
	// IsMonitoring is true while the monitor is subscribed to ticks.
	IsMonitoring bool

	// ProcessedCount is the number of reports evaluated this process.
	ProcessedCount int
}
