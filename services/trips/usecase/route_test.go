package usecase

import (
	"testing"

	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortStops(t *testing.T) {
	stops := sampleTrip().Stops

	sorted := SortStops(stops)

	require.Len(t, sorted, 3)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].StopOrder, sorted[i].StopOrder)
	}
	// input untouched
	assert.Equal(t, 3, stops[0].StopOrder)
}

func TestResolveRoute(t *testing.T) {
	tests := []struct {
		name         string
		from, to     string
		wantStart    string
		wantEnd      string
		boardsMidway bool
	}{
		{"no criteria uses route ends", "", "", "Аскарово", "Уфа", false},
		{"origin matches first stop", "Аскарово", "Уфа", "Аскарово", "Уфа", false},
		{"origin matches intermediate stop", "магнит", "", "Магнитогорск", "Уфа", true},
		{"unmatched cities fall back", "Сибай", "Гай", "Аскарово", "Уфа", false},
		{"substring hit on intermediate stop", "Орск", "", "Магнитогорск", "Уфа", true},
		{"destination matches intermediate stop", "", "Магнитогорск", "Аскарово", "Магнитогорск", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, ok := ResolveRoute(sampleTrip().Stops, tt.from, tt.to)

			require.True(t, ok)
			assert.Equal(t, tt.wantStart, route.Start.CityName)
			assert.Equal(t, tt.wantEnd, route.End.CityName)
			assert.Equal(t, tt.boardsMidway, route.BoardsMidway)
			assert.Equal(t, "Аскарово", route.First.CityName)
			assert.Equal(t, "Уфа", route.Last.CityName)
			require.Len(t, route.Intermediate, 1)
			assert.Equal(t, "Магнитогорск", route.Intermediate[0].CityName)
		})
	}
}

func TestResolveRoute_FirstMatchInOrderWins(t *testing.T) {
	stops := []models.Stop{
		stop(3, 3, "Уфа", ""),
		stop(1, 1, "Уфа-Сити", ""),
		stop(2, 2, "Белорецк", ""),
	}

	route, ok := ResolveRoute(stops, "уфа", "")

	require.True(t, ok)
	assert.Equal(t, "Уфа-Сити", route.Start.CityName)
	assert.False(t, route.BoardsMidway)
}

func TestResolveRoute_SingleStop(t *testing.T) {
	only := stop(1, 1, "Баймак", "2026-10-18T08:00:00Z")

	route, ok := ResolveRoute([]models.Stop{only}, "Уфа", "Орск")

	require.True(t, ok)
	assert.Equal(t, only, route.First)
	assert.Equal(t, only, route.Last)
	assert.Equal(t, only, route.Start)
	assert.Equal(t, only, route.End)
	assert.Empty(t, route.Intermediate)
	assert.False(t, route.BoardsMidway)
}

func TestResolveRoute_NoStops(t *testing.T) {
	route, ok := ResolveRoute(nil, "Уфа", "Орск")

	assert.False(t, ok)
	assert.Equal(t, Route{}, route)
}

func TestIsHighlighted(t *testing.T) {
	ufa := stop(1, 1, "Уфа", "")

	assert.True(t, IsHighlighted(ufa, "УФА", ""))
	assert.True(t, IsHighlighted(ufa, "", "уфа"))
	assert.False(t, IsHighlighted(ufa, "Орск", "Гай"))
	assert.False(t, IsHighlighted(ufa, "", ""))
}
