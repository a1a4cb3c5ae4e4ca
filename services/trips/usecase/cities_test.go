package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCities(t *testing.T) {
	cities := []string{"Уфа", "Магнитогорск", "Орск", "Оренбург"}

	assert.Equal(t, cities, FilterCities(cities, ""))
	assert.Equal(t, []string{"Магнитогорск", "Орск"}, FilterCities(cities, "орск"))
	assert.Equal(t, []string{"Оренбург"}, FilterCities(cities, "ОРЕН"))
	assert.Empty(t, FilterCities(cities, "Москва"))
}
