package usecase

import (
	"github.com/piresc/poputchik/internal/pkg/models"
)

// SearchState is the search screen at one point in time. Transitions
// return a new value and never touch the receiver.
type SearchState struct {
	Criteria   models.SearchCriteria
	Trips      []models.Trip
	Loading    bool
	LastError  error
	SelectedID *int64
}

// NewSearchState returns an idle state searching on the given date
func NewSearchState(date string) SearchState {
	return SearchState{
		Criteria: models.SearchCriteria{Date: date},
		Trips:    []models.Trip{},
	}
}

// WithFromCity sets the origin
func (s SearchState) WithFromCity(city string) SearchState {
	s.Criteria.FromCity = city
	return s
}

// WithToCity sets the destination
func (s SearchState) WithToCity(city string) SearchState {
	s.Criteria.ToCity = city
	return s
}

// WithDate sets the travel date (YYYY-MM-DD)
func (s SearchState) WithDate(date string) SearchState {
	s.Criteria.Date = date
	return s
}

// Swap exchanges origin and destination
func (s SearchState) Swap() SearchState {
	s.Criteria.FromCity, s.Criteria.ToCity = s.Criteria.ToCity, s.Criteria.FromCity
	return s
}

// Begin marks a request in flight and forgets the previous error
func (s SearchState) Begin() SearchState {
	s.Loading = true
	s.LastError = nil
	return s
}

// Succeed replaces the result list. Old results are never merged in.
func (s SearchState) Succeed(trips []models.Trip) SearchState {
	if trips == nil {
		trips = []models.Trip{}
	}
	s.Trips = trips
	s.Loading = false
	s.LastError = nil
	s.SelectedID = nil
	return s
}

// Fail records err and keeps the previous results
func (s SearchState) Fail(err error) SearchState {
	s.Loading = false
	s.LastError = err
	return s
}

// Select marks the trip with id as opened. ok is false when the trip is
// not part of the current results.
func (s SearchState) Select(id int64) (SearchState, bool) {
	if _, ok := s.Find(id); !ok {
		return s, false
	}
	s.SelectedID = &id
	return s, true
}

// ClearSelection closes the opened trip
func (s SearchState) ClearSelection() SearchState {
	s.SelectedID = nil
	return s
}

// Find looks a trip up in the current results
func (s SearchState) Find(id int64) (models.Trip, bool) {
	for _, t := range s.Trips {
		if t.ID == id {
			return t, true
		}
	}
	return models.Trip{}, false
}
