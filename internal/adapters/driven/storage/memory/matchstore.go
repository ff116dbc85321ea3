package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/reunite-labs/reunite/internal/core/domain"
	"github.com/reunite-labs/reunite/internal/core/ports/driven"
)

// Ensure MatchStore implements the interface.
var _ driven.MatchStore = (*MatchStore)(nil)

// MatchStore is an in-memory implementation of driven.MatchStore.
// Pair uniqueness is enforced under one lock, giving the same
// insert-if-absent atomicity the sqlite adapter gets from its
// unique index.
type MatchStore struct {
	mu      sync.RWMutex
	matches map[string]domain.Match
	pairs   map[[2]string]string
}

// NewMatchStore creates a new in-memory match store.
func NewMatchStore() *MatchStore {
	return &MatchStore{
		matches: make(map[string]domain.Match),
		pairs:   make(map[[2]string]string),
	}
}

// SaveIfAbsent inserts the match unless its pair already exists.
func (s *MatchStore) SaveIfAbsent(_ context.Context, match *domain.Match) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := [2]string{match.LostReportID, match.FoundReportID}
	if _, exists := s.pairs[key]; exists {
		return false, nil
	}
	s.pairs[key] = match.ID
	s.matches[match.ID] = *match
	return true, nil
}

// ExistsForPair reports whether a match exists for the pair.
func (s *MatchStore) ExistsForPair(_ context.Context, lostID, foundID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.pairs[[2]string{lostID, foundID}]
	return exists, nil
}

// ListForReport returns all matches involving the report, newest first.
func (s *MatchStore) ListForReport(_ context.Context, reportID string) ([]domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Match
	for id := range s.matches {
		match := s.matches[id]
		if match.LostReportID == reportID || match.FoundReportID == reportID {
			result = append(result, match)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// MarkNotified flips the notified flag on a match.
func (s *MatchStore) MarkNotified(_ context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	match, ok := s.matches[matchID]
	if !ok {
		return domain.ErrNotFound
	}
	match.Notified = true
	s.matches[matchID] = match
	return nil
}

// MarkContacted flips the contacted flag on a match.
func (s *MatchStore) MarkContacted(_ context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	match, ok := s.matches[matchID]
	if !ok {
		return domain.ErrNotFound
	}
	match.Contacted = true
	s.matches[matchID] = match
	return nil
}
