package ports

import "context"

// CurrentConditionsData is a pre-authored current-conditions record
type CurrentConditionsData struct {
	Location    string `json:"location"`
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	Visibility  int    `json:"visibility"`
	Pressure    int    `json:"pressure"`
	UVIndex     int    `json:"uvIndex"`
	Icon        string `json:"icon"`
	FeelsLike   int    `json:"feelsLike"`
}

// DailySummaryData is a pre-authored forecast day
type DailySummaryData struct {
	Day       string `json:"day"`
	High      int    `json:"high"`
	Low       int    `json:"low"`
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
}

// BundleData is a pre-authored weather bundle stored in a fallback catalog
type BundleData struct {
	Current  CurrentConditionsData `json:"current"`
	Forecast []DailySummaryData    `json:"forecast"`
}

// FallbackCatalog is a read-only lookup table of hand-authored bundles keyed by exact city name.
// Lookup returns a NotFound error when the city has no entry.
type FallbackCatalog interface {
	Lookup(ctx context.Context, city string) (*BundleData, error)
	Cities(ctx context.Context) ([]string, error)
	Backend() string
}
