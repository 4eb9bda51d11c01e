package weather

import "fmt"

const (
	metersPerSecondToKmh = 3.6
	metersPerKilometer   = 1000
)

// Normalize maps a raw current-conditions record into display units.
// The current-weather endpoint carries no UV data, so UVIndex is always 0.
func Normalize(raw RawCurrent) CurrentConditions {
	return CurrentConditions{
		Location:    fmt.Sprintf("%s, %s", raw.Name, raw.Country),
		Temperature: roundInt(raw.TempC),
		Condition:   raw.Condition,
		Description: raw.Description,
		Humidity:    roundInt(raw.Humidity),
		WindSpeed:   roundInt(raw.WindSpeedMS * metersPerSecondToKmh),
		Visibility:  roundInt(raw.VisibilityM / metersPerKilometer),
		Pressure:    roundInt(raw.Pressure),
		UVIndex:     0,
		Icon:        Classify(raw.Condition),
		FeelsLike:   roundInt(raw.FeelsLikeC),
	}
}
