package search

import (
	"log"

	"quickpick/internal/domain"
	"quickpick/internal/ui/services/events"
)

// Ranker produces the shortlist for a query
type Ranker interface {
	Rank(query string) domain.Results
}

// Service handles search functionality
type Service struct {
	state     *State
	bus       events.EventBus
	ranker    Ranker
	resultsFn func(domain.Results) // receives every new result list
}

// NewService creates a new search service
func NewService(bus events.EventBus, ranker Ranker) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state:  &State{},
		bus:    bus,
		ranker: ranker,
	}
}

// SetResultsFunction sets the function that receives new results
func (s *Service) SetResultsFunction(fn func(domain.Results)) {
	s.resultsFn = fn
}

// SetQuery ranks the corpus against query.
// The ranking is recomputed even when the query has not changed.
func (s *Service) SetQuery(query string) domain.Results {
	s.state.Query = query
	s.state.Results = s.ranker.Rank(query)

	log.Printf("Search completed for '%s': found %d matches, scores %v", query, len(s.state.Results), s.state.Results.Scores())

	s.bus.Publish(domain.QueryChangedEvent{
		Query:      query,
		MatchCount: len(s.state.Results),
	})

	if s.resultsFn != nil {
		s.resultsFn(s.state.Results)
	}
	return s.state.Results
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// GetResults returns the latest results
func (s *Service) GetResults() domain.Results {
	return s.state.Results
}

// GetMatchCount returns the number of results
func (s *Service) GetMatchCount() int {
	return len(s.state.Results)
}
