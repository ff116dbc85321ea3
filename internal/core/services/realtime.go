package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/reunite-labs/reunite/internal/core/domain"
	"github.com/reunite-labs/reunite/internal/core/ports/driven"
	"github.com/reunite-labs/reunite/internal/core/ports/driving"
	"github.com/reunite-labs/reunite/internal/logger"
	"github.com/reunite-labs/reunite/internal/matching"
)

// Ensure RealTimeService implements the interface.
var _ driving.MatcherService = (*RealTimeService)(nil)

// RealTimeService is the on-demand engine mode. Every call re-queries
// the store and scores plain TF vectors with no corpus-wide rarity
// weighting, trading O(corpus) work per call for guaranteed freshness.
type RealTimeService struct {
	reports  driven.ReportStore
	pipeline *matching.Pipeline
}

// NewRealTimeService creates an on-demand matcher.
func NewRealTimeService(reports driven.ReportStore, pipeline *matching.Pipeline) *RealTimeService {
	return &RealTimeService{
		reports:  reports,
		pipeline: pipeline,
	}
}

// FindMatches fetches the report and all open opposite-kind reports
// fresh, then ranks them. Owner exclusion happens at the store query,
// not as a post-filter.
func (s *RealTimeService) FindMatches(ctx context.Context, reportID string, cfg domain.MatchConfig) ([]domain.MatchResult, error) {
	if reportID == "" {
		return nil, fmt.Errorf("%w: report id required", domain.ErrInvalidInput)
	}
	cfg, err := cfg.Normalise()
	if err != nil {
		return nil, err
	}

	report, err := s.reports.GetReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", reportID, err)
	}

	pool, err := s.reports.ListOpenReports(ctx, report.Kind.Opposite(), domain.ReportFilters{
		ExcludeOwnerID: cfg.ExcludeOwnerID,
	})
	if err != nil {
		return nil, fmt.Errorf("list %s reports: %w", report.Kind.Opposite(), err)
	}
	logger.Debug("Real-time match: report=%s pool=%d", reportID, len(pool))

	norm := s.pipeline.Normalizer()
	query := tfCandidate(norm, *report)
	candidates := make([]matching.Candidate, len(pool))
	for i, rep := range pool {
		candidates[i] = tfCandidate(norm, rep)
	}

	return s.pipeline.Ranker().Rank(query, candidates, cfg), nil
}

// SearchByText tokenises the query as a pseudo-report and scores it
// against the open corpus. An invalid kind searches both kinds.
func (s *RealTimeService) SearchByText(ctx context.Context, query string, kind domain.ReportKind, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query required", domain.ErrInvalidInput)
	}

	kinds := []domain.ReportKind{domain.KindLost, domain.KindFound}
	if kind.IsValid() {
		kinds = []domain.ReportKind{kind}
	}

	norm := s.pipeline.Normalizer()
	var pool []matching.Candidate
	for _, k := range kinds {
		reports, err := s.reports.ListOpenReports(ctx, k, domain.ReportFilters{})
		if err != nil {
			return nil, fmt.Errorf("list %s reports: %w", k, err)
		}
		for _, rep := range reports {
			pool = append(pool, tfCandidate(norm, rep))
		}
	}
	logger.Debug("Text search: query=%q pool=%d", query, len(pool))

	vec := matching.TermFrequency(norm.Tokens(query))
	return rankText(vec, pool, opts), nil
}
