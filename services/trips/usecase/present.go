package usecase

import (
	"time"

	"github.com/piresc/poputchik/internal/pkg/models"
)

// BuildCard shapes a trip for the result list. The departure shown is
// the arrival time at the stop where the searcher boards.
func BuildCard(trip models.Trip, criteria models.SearchCriteria, now time.Time, loc *time.Location) models.TripCard {
	card := models.TripCard{
		TripID:         trip.ID,
		DepartureClock: models.ClockPlaceholder,
		IsTaxi:         trip.IsTaxi,
		Car:            trip.CarName(),
		HasCargo:       trip.HasCargo,
		HasChildSeat:   trip.HasChildSeat,
		Note:           trip.Note(),
	}

	route, ok := ResolveRoute(trip.Stops, criteria.FromCity, criteria.ToCity)
	if !ok {
		return card
	}

	card.DepartureClock = models.FormatClock(route.Start.ArrivalTime, loc)
	card.DepartureDay = models.FormatDay(route.Start.ArrivalTime, now, loc, models.DayStyleShort)
	card.FromCity = route.Start.CityName
	card.ToCity = route.End.CityName
	card.BoardsMidway = route.BoardsMidway
	return card
}

// BuildCards shapes every trip, keeping the API order
func BuildCards(trips []models.Trip, criteria models.SearchCriteria, now time.Time, loc *time.Location) []models.TripCard {
	cards := make([]models.TripCard, 0, len(trips))
	for _, t := range trips {
		cards = append(cards, BuildCard(t, criteria, now, loc))
	}
	return cards
}

// BuildDetail shapes a trip for the detail overlay. Day and clock come
// from the route's first stop.
func BuildDetail(trip models.Trip, criteria models.SearchCriteria, now time.Time, loc *time.Location) *models.TripDetail {
	detail := &models.TripDetail{
		TripID:       trip.ID,
		Clock:        models.ClockPlaceholder,
		Contacts:     contactViews(trip.Contacts),
		Stops:        []models.StopView{},
		Via:          []string{},
		IsTaxi:       trip.IsTaxi,
		Car:          trip.CarName(),
		HasCargo:     trip.HasCargo,
		HasChildSeat: trip.HasChildSeat,
		Note:         trip.Note(),
		MessageLink:  trip.MessageLink,
		PlatformName: trip.PlatformName,
	}

	route, ok := ResolveRoute(trip.Stops, criteria.FromCity, criteria.ToCity)
	if !ok {
		return detail
	}

	detail.DayLabel = models.FormatDay(route.First.ArrivalTime, now, loc, models.DayStyleLong)
	detail.Clock = models.FormatClock(route.First.ArrivalTime, loc)

	last := len(route.Stops) - 1
	for i, s := range route.Stops {
		detail.Stops = append(detail.Stops, models.StopView{
			CityName:    s.CityName,
			Clock:       models.FormatClock(s.ArrivalTime, loc),
			IsFirst:     i == 0,
			IsLast:      i == last,
			Highlighted: IsHighlighted(s, criteria.FromCity, criteria.ToCity),
		})
	}
	for _, s := range route.Intermediate {
		detail.Via = append(detail.Via, s.CityName)
	}

	return detail
}
