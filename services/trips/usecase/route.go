package usecase

import (
	"sort"

	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/piresc/poputchik/internal/utils"
)

// Route is a trip's stop list resolved against the searched cities
type Route struct {
	Stops        []models.Stop // sorted by StopOrder
	First        models.Stop
	Last         models.Stop
	Start        models.Stop // where the searcher boards
	End          models.Stop // where the searcher gets off
	Intermediate []models.Stop
	BoardsMidway bool
}

// SortStops returns a copy of stops ordered by StopOrder.
// The API does not guarantee order.
func SortStops(stops []models.Stop) []models.Stop {
	sorted := make([]models.Stop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StopOrder < sorted[j].StopOrder
	})
	return sorted
}

// StopMatches reports whether the stop's city contains query, ignoring case
func StopMatches(stop models.Stop, query string) bool {
	return utils.ContainsFold(stop.CityName, query)
}

// IsHighlighted reports whether a stop matches either searched city
func IsHighlighted(stop models.Stop, fromCity, toCity string) bool {
	return StopMatches(stop, fromCity) || StopMatches(stop, toCity)
}

// findStop returns the first of the sorted stops matching query
func findStop(sorted []models.Stop, query string) (models.Stop, bool) {
	if query == "" {
		return models.Stop{}, false
	}
	for _, s := range sorted {
		if StopMatches(s, query) {
			return s, true
		}
	}
	return models.Stop{}, false
}

// ResolveRoute sorts the stops and picks the displayed start and end.
// ok is false for a trip without stops.
func ResolveRoute(stops []models.Stop, fromCity, toCity string) (Route, bool) {
	if len(stops) == 0 {
		return Route{}, false
	}

	sorted := SortStops(stops)
	route := Route{
		Stops: sorted,
		First: sorted[0],
		Last:  sorted[len(sorted)-1],
	}

	route.Start = route.First
	if s, ok := findStop(sorted, fromCity); ok {
		route.Start = s
	}
	route.End = route.Last
	if s, ok := findStop(sorted, toCity); ok {
		route.End = s
	}
	route.BoardsMidway = route.Start.StopOrder != route.First.StopOrder

	if len(sorted) > 2 {
		route.Intermediate = sorted[1 : len(sorted)-1]
	} else {
		route.Intermediate = []models.Stop{}
	}

	return route, true
}
