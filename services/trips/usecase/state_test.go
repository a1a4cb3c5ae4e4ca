package usecase

import (
	"errors"
	"testing"

	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchState_CriteriaTransitions(t *testing.T) {
	initial := NewSearchState("2026-10-18")

	next := initial.WithFromCity("Уфа").WithToCity("Орск").WithDate("2026-10-20")

	assert.Equal(t, models.SearchCriteria{FromCity: "Уфа", ToCity: "Орск", Date: "2026-10-20"}, next.Criteria)
	assert.Equal(t, models.SearchCriteria{Date: "2026-10-18"}, initial.Criteria)

	swapped := next.Swap()
	assert.Equal(t, "Орск", swapped.Criteria.FromCity)
	assert.Equal(t, "Уфа", swapped.Criteria.ToCity)
	assert.Equal(t, next, swapped.Swap())
}

func TestSearchState_SucceedReplacesList(t *testing.T) {
	first := []models.Trip{{ID: 1}, {ID: 2}}
	second := []models.Trip{{ID: 3}}

	s := NewSearchState("2026-10-18").Begin().Succeed(first)
	s, ok := s.Select(2)
	require.True(t, ok)

	s = s.Begin()
	assert.True(t, s.Loading)
	s = s.Succeed(second)

	assert.False(t, s.Loading)
	assert.Equal(t, second, s.Trips)
	assert.Nil(t, s.SelectedID)
	assert.NoError(t, s.LastError)
}

func TestSearchState_FailKeepsList(t *testing.T) {
	trips := []models.Trip{{ID: 1}}
	boom := errors.New("boom")

	s := NewSearchState("2026-10-18").Succeed(trips).Begin().Fail(boom)

	assert.False(t, s.Loading)
	assert.Equal(t, trips, s.Trips)
	assert.ErrorIs(t, s.LastError, boom)

	s = s.Begin()
	assert.NoError(t, s.LastError)
}

func TestSearchState_Select(t *testing.T) {
	s := NewSearchState("2026-10-18").Succeed([]models.Trip{{ID: 7}})

	_, ok := s.Select(8)
	assert.False(t, ok)

	s, ok = s.Select(7)
	require.True(t, ok)
	require.NotNil(t, s.SelectedID)
	assert.Equal(t, int64(7), *s.SelectedID)

	assert.Nil(t, s.ClearSelection().SelectedID)
}

func TestSearchState_SucceedWithNilList(t *testing.T) {
	s := NewSearchState("2026-10-18").Succeed(nil)

	assert.NotNil(t, s.Trips)
	assert.Empty(t, s.Trips)
}
