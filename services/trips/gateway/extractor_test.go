package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/piresc/poputchik/services/trips"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownCities = []string{"Аскарово", "Уфа", "Баймак", "Белорецк", "Оренбург", "Орск", "Магнитогорск", "Гай"}

func cityNames(e *StubExtractor, text string) ([]string, error) {
	trip, err := e.Extract(context.Background(), text)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(trip.Stops))
	for _, s := range trip.Stops {
		names = append(names, s.CityName)
	}
	return names, nil
}

func TestStubExtractor_Extract(t *testing.T) {
	e := NewStubExtractor(knownCities, 0)
	text := "Завтра из Белорецка через Аскарово в Уфа, 2 места, 89171234567"

	trip, err := e.Extract(context.Background(), text)

	require.NoError(t, err)
	assert.Equal(t, DraftPlatform, trip.PlatformName)
	assert.Equal(t, text, trip.Note())
	assert.Empty(t, trip.DepartureTime)
	require.Len(t, trip.Stops, 3)
	assert.Equal(t, "Белорецк", trip.Stops[0].CityName)
	assert.Equal(t, "Аскарово", trip.Stops[1].CityName)
	assert.Equal(t, "Уфа", trip.Stops[2].CityName)
	for i, s := range trip.Stops {
		assert.Equal(t, i+1, s.StopOrder)
		assert.Empty(t, s.ArrivalTime)
	}
}

func TestStubExtractor_CaseAndInflection(t *testing.T) {
	e := NewStubExtractor(knownCities, 0)

	names, err := cityNames(e, "ОРЕНБУРГ -> баймак")

	require.NoError(t, err)
	assert.Equal(t, []string{"Оренбург", "Баймак"}, names)

	names, err = cityNames(e, "еду в Баймаке до обеда")
	require.NoError(t, err)
	assert.Equal(t, []string{"Баймак"}, names)
}

func TestStubExtractor_ShortNames(t *testing.T) {
	e := NewStubExtractor(knownCities, 0)

	names, err := cityNames(e, "Еду завтра в Уфу в 10 утра, есть 2 места, багаж беру.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Уфа"}, names)

	names, err = cityNames(e, "из Гая в Орск")
	require.NoError(t, err)
	assert.Equal(t, []string{"Гай", "Орск"}, names)
}

func TestStubExtractor_MatchesWordStartOnly(t *testing.T) {
	e := NewStubExtractor(knownCities, 0)

	names, err := cityNames(e, "Из Магнитогорска в Уфу")

	require.NoError(t, err)
	assert.Equal(t, []string{"Магнитогорск", "Уфа"}, names)
}

func TestCityStem(t *testing.T) {
	tests := []struct {
		city     string
		expected string
	}{
		{"Уфа", "Уф"},
		{"Гай", "Га"},
		{"Аскарово", "Аскаров"},
		{"Орск", "Орск"},
		{"Белорецк", "Белорецк"},
		{"Ош", "Ош"},
	}

	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			assert.Equal(t, tt.expected, cityStem(tt.city))
		})
	}
}

func TestStubExtractor_NoCities(t *testing.T) {
	e := NewStubExtractor(knownCities, 0)

	names, err := cityNames(e, "Ищу попутчиков")

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStubExtractor_EmptyText(t *testing.T) {
	e := NewStubExtractor(knownCities, 0)

	_, err := e.Extract(context.Background(), " \n\t ")

	assert.ErrorIs(t, err, trips.ErrEmptyText)
}

func TestStubExtractor_Delay(t *testing.T) {
	e := NewStubExtractor(knownCities, 20*time.Millisecond)

	start := time.Now()
	_, err := e.Extract(context.Background(), "Уфа")

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestStubExtractor_ContextCancelled(t *testing.T) {
	e := NewStubExtractor(knownCities, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	trip, err := e.Extract(ctx, "Уфа")

	assert.Nil(t, trip)
	assert.ErrorIs(t, err, context.Canceled)
}
