package usecase

import (
	"github.com/piresc/poputchik/internal/utils"
)

// FilterCities returns the cities containing query, ignoring case.
// An empty query returns the whole list.
func FilterCities(cities []string, query string) []string {
	if query == "" {
		out := make([]string, len(cities))
		copy(out, cities)
		return out
	}

	out := []string{}
	for _, c := range cities {
		if utils.ContainsFold(c, query) {
			out = append(out, c)
		}
	}
	return out
}
