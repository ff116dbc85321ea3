package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/reunite-labs/reunite/internal/core/domain"
	"github.com/reunite-labs/reunite/internal/core/ports/driven"
	"github.com/reunite-labs/reunite/internal/core/ports/driving"
	"github.com/reunite-labs/reunite/internal/logger"
	"github.com/reunite-labs/reunite/internal/matching"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService is the batch engine mode. Initialize loads every open
// report, derives their vectors, and trains one shared IDF table over
// the combined corpus; queries then amortise that work across cheap
// repeated lookups. The snapshot goes stale as reports arrive; Refresh
// rebuilds it in full, and the acceptable staleness window is the
// caller's concern.
type CorpusService struct {
	reports  driven.ReportStore
	pipeline *matching.Pipeline

	mu         sync.RWMutex
	trained    bool
	idf        domain.IDFTable
	candidates map[domain.ReportKind][]matching.Candidate
	byID       map[string]matching.Candidate
}

// NewCorpusService creates an untrained batch matcher.
func NewCorpusService(reports driven.ReportStore, pipeline *matching.Pipeline) *CorpusService {
	return &CorpusService{
		reports:  reports,
		pipeline: pipeline,
	}
}

// Initialize loads all open lost and found reports, builds their
// feature vectors, and computes the shared IDF table.
func (s *CorpusService) Initialize(ctx context.Context) error {
	logger.Section("Corpus Training")

	norm := s.pipeline.Normalizer()
	lost, err := s.reports.ListOpenReports(ctx, domain.KindLost, domain.ReportFilters{})
	if err != nil {
		return fmt.Errorf("load lost corpus: %w", err)
	}
	found, err := s.reports.ListOpenReports(ctx, domain.KindFound, domain.ReportFilters{})
	if err != nil {
		return fmt.Errorf("load found corpus: %w", err)
	}
	logger.Debug("Corpus: %d lost, %d found", len(lost), len(found))

	// Token lists feed the IDF table; vectors are weighted afterwards
	// so every document shares the same table.
	all := append(append([]domain.Report{}, lost...), found...)
	features := make([]domain.FeatureVector, len(all))
	tokenLists := make([][]string, len(all))
	for i, rep := range all {
		features[i] = featureVector(norm, rep)
		tokenLists[i] = features[i].Tokens
	}

	idf := matching.IDF(tokenLists)
	logger.Debug("IDF table: %d distinct tokens", len(idf))

	candidates := map[domain.ReportKind][]matching.Candidate{
		domain.KindLost:  make([]matching.Candidate, 0, len(lost)),
		domain.KindFound: make([]matching.Candidate, 0, len(found)),
	}
	byID := make(map[string]matching.Candidate, len(all))
	for i, rep := range all {
		cand := matching.Candidate{
			Report:   rep,
			Features: features[i],
			Vector:   matching.TFIDFVector(features[i].Tokens, idf),
		}
		candidates[rep.Kind] = append(candidates[rep.Kind], cand)
		byID[rep.ID] = cand
	}

	s.mu.Lock()
	s.trained = true
	s.idf = idf
	s.candidates = candidates
	s.byID = byID
	s.mu.Unlock()

	logger.Info("Corpus trained: %d reports, %d tokens", len(all), len(idf))
	return nil
}

// Refresh re-runs Initialize in full. There is no incremental update.
func (s *CorpusService) Refresh(ctx context.Context) error {
	return s.Initialize(ctx)
}

// Stats reports the trained flag and corpus sizes.
func (s *CorpusService) Stats() domain.CorpusStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CorpusStats{
		Trained:        s.trained,
		LostCount:      len(s.candidates[domain.KindLost]),
		FoundCount:     len(s.candidates[domain.KindFound]),
		VocabularySize: len(s.idf),
	}
}

// FindMatches ranks all cached opposite-kind candidates against the
// report's TF-IDF vector. The report's vector comes from the snapshot
// when available and is recomputed against the shared IDF table for
// IDs outside it. Returns domain.ErrNotTrained before Initialize.
func (s *CorpusService) FindMatches(ctx context.Context, reportID string, cfg domain.MatchConfig) ([]domain.MatchResult, error) {
	if reportID == "" {
		return nil, fmt.Errorf("%w: report id required", domain.ErrInvalidInput)
	}
	cfg, err := cfg.Normalise()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	if !s.trained {
		s.mu.RUnlock()
		return nil, domain.ErrNotTrained
	}
	query, cached := s.byID[reportID]
	idf := s.idf
	s.mu.RUnlock()

	if !cached {
		// The report arrived after the snapshot; weight it against the
		// existing table rather than forcing a refresh.
		report, err := s.reports.GetReport(ctx, reportID)
		if err != nil {
			return nil, fmt.Errorf("get report %s: %w", reportID, err)
		}
		query = tfidfCandidate(s.pipeline.Normalizer(), *report, idf)
	}

	s.mu.RLock()
	pool := s.candidates[query.Report.Kind.Opposite()]
	s.mu.RUnlock()

	logger.Debug("Batch match: report=%s pool=%d", reportID, len(pool))
	return s.pipeline.Ranker().Rank(query, pool, cfg), nil
}

// SearchByText scores free text against the cached corpus. An invalid
// kind searches both kinds; each result carries its source kind.
func (s *CorpusService) SearchByText(ctx context.Context, query string, kind domain.ReportKind, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query required", domain.ErrInvalidInput)
	}

	s.mu.RLock()
	if !s.trained {
		s.mu.RUnlock()
		return nil, domain.ErrNotTrained
	}
	idf := s.idf
	pool := s.pool(kind)
	s.mu.RUnlock()

	tokens := s.pipeline.Normalizer().Tokens(query)
	vec := matching.TFIDFVector(tokens, idf)
	return rankText(vec, pool, opts), nil
}

// pool gathers candidates for one kind, or both for an invalid kind.
// Callers must hold at least a read lock.
func (s *CorpusService) pool(kind domain.ReportKind) []matching.Candidate {
	if kind.IsValid() {
		return s.candidates[kind]
	}
	both := make([]matching.Candidate, 0, len(s.candidates[domain.KindLost])+len(s.candidates[domain.KindFound]))
	both = append(both, s.candidates[domain.KindLost]...)
	both = append(both, s.candidates[domain.KindFound]...)
	return both
}
