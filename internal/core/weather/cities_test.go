package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCities(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "Substring", query: "lo", expected: []string{"London", "Bangalore", "Los Angeles"}},
		{name: "CaseInsensitive", query: "MUM", expected: []string{"Mumbai"}},
		{name: "Suffix", query: "bad", expected: []string{"Hyderabad", "Ahmedabad", "Ghaziabad", "Faridabad"}},
		{name: "NoMatch", query: "Atlantis", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SuggestCities(tt.query))
		})
	}
}

func TestSuggestCities_EmptyQueryReturnsFirstPage(t *testing.T) {
	cities := SuggestCities("  ")

	assert.Equal(t, popularCities[:MaxSuggestions], cities)
}

func TestSuggestCities_CappedAndDeduplicated(t *testing.T) {
	// "a" matches most of both lists, including the four cities they share
	cities := SuggestCities("a")

	require.Len(t, cities, MaxSuggestions)
	seen := make(map[string]bool)
	for _, city := range cities {
		assert.False(t, seen[city], "duplicate %s", city)
		seen[city] = true
	}
	assert.Equal(t, []string{"Paris", "Bangalore", "Chennai", "Mumbai", "Los Angeles", "Singapore", "Kolkata", "Hyderabad"}, cities)
}
