package weather

import (
	"fmt"
	"time"

	"weathrly.app/pkg/validation"
)

// IconCategory is the display category for a weather condition
type IconCategory string

const (
	IconSunny        IconCategory = "sunny"
	IconPartlyCloudy IconCategory = "partly-cloudy"
	IconCloudy       IconCategory = "cloudy"
	IconRainy        IconCategory = "rainy"
	IconSnowy        IconCategory = "snowy"
)

// IsValid reports whether the category belongs to the closed display set
func (i IconCategory) IsValid() bool {
	switch i {
	case IconSunny, IconPartlyCloudy, IconCloudy, IconRainy, IconSnowy:
		return true
	default:
		return false
	}
}

// Reading is one upstream forecast sample
type Reading struct {
	Timestamp    time.Time
	TemperatureC float64
	Condition    string
}

// RawCurrent is the typed upstream current-conditions record, in provider units
type RawCurrent struct {
	Name        string
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

// DailySummary is one summarized forecast day
type DailySummary struct {
	Day       string       `json:"day"`
	High      int          `json:"high"`
	Low       int          `json:"low"`
	Condition string       `json:"condition"`
	Icon      IconCategory `json:"icon"`
}

// CurrentConditions is the normalized current weather in display units
// (°C, km/h, km, hPa, %)
type CurrentConditions struct {
	Location    string       `json:"location"`
	Temperature int          `json:"temperature"`
	Condition   string       `json:"condition"`
	Description string       `json:"description"`
	Humidity    int          `json:"humidity"`
	WindSpeed   int          `json:"windSpeed"`
	Visibility  int          `json:"visibility"`
	Pressure    int          `json:"pressure"`
	UVIndex     int          `json:"uvIndex"`
	Icon        IconCategory `json:"icon"`
	FeelsLike   int          `json:"feelsLike"`
}

// Bundle is the artifact returned to the presentation layer
type Bundle struct {
	Current  CurrentConditions `json:"current"`
	Forecast []DailySummary    `json:"forecast"`
}

// Source tells where a bundle's data came from
type Source int

const (
	SourceUnknown Source = iota
	// SourceLive means current conditions and forecast both came from the provider
	SourceLive
	// SourcePartial means live current conditions with a fallback forecast
	SourcePartial
	// SourceFallback means the whole bundle is fallback data
	SourceFallback
)

// String returns the string representation of the source
func (s Source) String() string {
	switch s {
	case SourceLive:
		return "live"
	case SourcePartial:
		return "partial"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// LookupRequest represents a request for a city's weather
type LookupRequest struct {
	City string
}

// IsValid validates the lookup request
func (r *LookupRequest) IsValid() error {
	if !validation.IsNotBlank(r.City) {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}

// NormalizeCity normalizes city name for consistent processing
func (r *LookupRequest) NormalizeCity() {
	r.City, _ = validation.TrimAndValidate(r.City)
}

// LookupResult is the outcome of a single lookup
type LookupResult struct {
	Bundle Bundle
	Source Source
	Alerts []Alert
}
