package weather

import "strings"

var popularCities = []string{
	"New York", "London", "Tokyo", "Paris", "Bangalore",
	"Delhi", "Chennai", "Mumbai", "Los Angeles", "Singapore",
}

var indianCities = []string{
	"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata",
	"Hyderabad", "Pune", "Ahmedabad", "Jaipur", "Surat",
	"Lucknow", "Kanpur", "Nagpur", "Indore", "Thane",
	"Bhopal", "Visakhapatnam", "Pimpri-Chinchwad", "Patna", "Vadodara",
	"Ghaziabad", "Ludhiana", "Agra", "Nashik", "Faridabad",
	"Meerut", "Rajkot", "Kalyan-Dombivli", "Vasai-Virar", "Varanasi",
}

// MaxSuggestions caps how many cities SuggestCities returns
const MaxSuggestions = 8

// SuggestCities returns up to MaxSuggestions known cities whose name contains query,
// case-insensitively. Duplicates between the popular and Indian lists appear once.
func SuggestCities(query string) []string {
	needle := strings.ToLower(strings.TrimSpace(query))
	seen := make(map[string]bool)
	matches := make([]string, 0)

	for _, list := range [][]string{popularCities, indianCities} {
		for _, city := range list {
			if seen[city] {
				continue
			}
			if strings.Contains(strings.ToLower(city), needle) {
				seen[city] = true
				matches = append(matches, city)
				if len(matches) == MaxSuggestions {
					return matches
				}
			}
		}
	}

	return matches
}
