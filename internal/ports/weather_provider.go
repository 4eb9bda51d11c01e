package ports

import (
	"context"
	"time"
)

// CurrentWeatherData is the typed current-conditions record returned by the upstream provider
type CurrentWeatherData struct {
	City        string
	Country     string
	TempC       float64
	FeelsLikeC  float64
	Humidity    float64
	Pressure    float64
	Condition   string
	Description string
	WindSpeedMS float64
	VisibilityM float64
}

// ForecastEntry is a single timestamped forecast sample
type ForecastEntry struct {
	Timestamp time.Time
	TempC     float64
	Condition string
}

// ForecastData is the typed forecast payload returned by the upstream provider
type ForecastData struct {
	Entries []ForecastEntry
	// UTCOffsetSeconds is the forecast city's offset from UTC, used for calendar-day boundaries
	UTCOffsetSeconds int
}

// WeatherGateway defines the contract for the upstream weather provider.
// Implementations classify failures with pkg/errors types: NotFound, Unauthorized,
// ExternalAPI, Transport and Parse.
type WeatherGateway interface {
	FetchCurrent(ctx context.Context, city string) (*CurrentWeatherData, error)
	FetchForecast(ctx context.Context, city string) (*ForecastData, error)
	GetProviderName() string
}
