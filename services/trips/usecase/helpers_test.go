package usecase

import (
	"time"

	"github.com/piresc/poputchik/internal/pkg/models"
)

var testNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func stop(id int64, order int, city, arrival string) models.Stop {
	return models.Stop{ID: id, TripID: 1, CityName: city, ArrivalTime: arrival, StopOrder: order}
}

func strPtr(s string) *string { return &s }

// sampleTrip is Аскарово -> Магнитогорск -> Уфа, returned out of order
func sampleTrip() models.Trip {
	return models.Trip{
		ID:            1,
		PlatformName:  "telegram",
		DepartureTime: "2026-10-18T06:00:00Z",
		Car:           strPtr("Lada Granta"),
		RawText:       strPtr("Еду в Уфу, 3 места"),
		HasCargo:      true,
		MessageLink:   "https://t.me/poputki/42",
		Contacts: []models.Contact{
			{Type: models.ContactTypePhone, Value: "+79171234567"},
			{Type: models.ContactTypeTelegram, Value: "@driver"},
		},
		Stops: []models.Stop{
			stop(12, 3, "Уфа", "2026-10-18T14:15:00Z"),
			stop(10, 1, "Аскарово", "2026-10-18T06:00:00Z"),
			stop(11, 2, "Магнитогорск", "2026-10-18T07:30:00Z"),
		},
	}
}
