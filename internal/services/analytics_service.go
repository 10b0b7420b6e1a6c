package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"umoabonds/internal/models"
)

const (
	topSearchesLimit = 10
	recentLimit      = 20

	// maxTrackedQueries bounds the distinct queries counted; on overflow only
	// the busiest keptQueries survive.
	maxTrackedQueries = 1000
	keptQueries       = maxTrackedQueries / 2
)

// analyticsService keeps search statistics in memory. Counters reset on
// restart or through Reset.
type analyticsService struct {
	mu        sync.Mutex
	total     int64
	succeeded int64
	queries   map[string]int
	countries map[string]int
	types     map[string]int
	recent    []SearchEvent
	since     time.Time
	now       func() time.Time
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService() AnalyticsServicer {
	s := &analyticsService{now: time.Now}
	s.reset()
	return s
}

func (s *analyticsService) reset() {
	s.total = 0
	s.succeeded = 0
	s.queries = make(map[string]int)
	s.countries = make(map[string]int)
	s.types = make(map[string]int)
	s.recent = nil
	s.since = s.now().UTC()
}

// RecordSearch counts a search and what it found.
func (s *analyticsService) RecordSearch(query string, results []models.Security) {
	query = strings.ToUpper(strings.TrimSpace(query))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	if _, ok := s.queries[query]; !ok && len(s.queries) >= maxTrackedQueries {
		s.pruneQueries()
	}
	s.queries[query]++
	if len(results) > 0 {
		s.succeeded++
	}
	for i := range results {
		s.countries[results[i].CountryCode]++
		s.types[string(results[i].SecurityType)]++
	}

	s.recent = append(s.recent, SearchEvent{Query: query, Results: len(results), At: s.now().UTC()})
	if len(s.recent) > recentLimit {
		s.recent = s.recent[len(s.recent)-recentLimit:]
	}
}

// Snapshot returns a copy of the current statistics. Recent searches are
// newest first.
func (s *analyticsService) Snapshot() AnalyticsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := AnalyticsSnapshot{
		TotalSearches:      s.total,
		SuccessfulSearches: s.succeeded,
		FailedSearches:     s.total - s.succeeded,
		ByCountry:          make(map[string]int, len(s.countries)),
		ByType:             make(map[string]int, len(s.types)),
		Recent:             make([]SearchEvent, 0, len(s.recent)),
		Since:              s.since,
	}
	if s.total > 0 {
		snap.SuccessRate = float64(s.succeeded) / float64(s.total) * 100
	}
	for k, v := range s.countries {
		snap.ByCountry[k] = v
	}
	for k, v := range s.types {
		snap.ByType[k] = v
	}
	for i := len(s.recent) - 1; i >= 0; i-- {
		snap.Recent = append(snap.Recent, s.recent[i])
	}

	top := rankQueries(s.queries)
	if len(top) > topSearchesLimit {
		top = top[:topSearchesLimit]
	}
	snap.TopSearches = top
	return snap
}

// pruneQueries keeps the keptQueries most searched queries.
func (s *analyticsService) pruneQueries() {
	ranked := rankQueries(s.queries)
	s.queries = make(map[string]int, maxTrackedQueries)
	for _, q := range ranked[:keptQueries] {
		s.queries[q.Query] = q.Count
	}
}

// rankQueries orders queries by count, then alphabetically.
func rankQueries(queries map[string]int) []SearchCount {
	ranked := make([]SearchCount, 0, len(queries))
	for q, n := range queries {
		ranked = append(ranked, SearchCount{Query: q, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Query < ranked[j].Query
	})
	return ranked
}

// Reset clears all counters.
func (s *analyticsService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}
