package weather

import (
	"context"

	"github.com/jonboulle/clockwork"
	"weathrly.app/internal/ports"
	"weathrly.app/pkg/errors"
)

type forecastSlot struct {
	highBase  int
	lowBase   int
	condition string
	icon      IconCategory
}

// Synthesized forecasts trend warmer Today→Tomorrow, turn rainy mid-week and ease off after.
var synthesizedSlots = [forecastDays]forecastSlot{
	{highBase: 20, lowBase: 10, condition: "Partly Cloudy", icon: IconPartlyCloudy},
	{highBase: 22, lowBase: 12, condition: "Sunny", icon: IconSunny},
	{highBase: 18, lowBase: 8, condition: "Rainy", icon: IconRainy},
	{highBase: 21, lowBase: 11, condition: "Cloudy", icon: IconCloudy},
	{highBase: 19, lowBase: 9, condition: "Partly Cloudy", icon: IconPartlyCloudy},
}

const (
	highSpread = 15
	lowSpread  = 10
)

// FallbackProvider supplies weather bundles when live data is unavailable
type FallbackProvider struct {
	catalog ports.FallbackCatalog
	random  RandomSource
	clock   clockwork.Clock
	logger  ports.Logger
}

type FallbackDependencies struct {
	Catalog ports.FallbackCatalog
	Random  RandomSource
	Clock   clockwork.Clock
	Logger  ports.Logger
}

func NewFallbackProvider(deps FallbackDependencies) (*FallbackProvider, error) {
	if deps.Catalog == nil {
		return nil, errors.NewValidationError("fallback catalog is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	random := deps.Random
	if random == nil {
		random = NewRandomSource(0)
	}
	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &FallbackProvider{
		catalog: deps.Catalog,
		random:  random,
		clock:   clock,
		logger:  deps.Logger,
	}, nil
}

// Bundle returns the catalog bundle for the exact city name, or a synthesized one.
// It always yields five forecast days and never fails.
func (p *FallbackProvider) Bundle(ctx context.Context, city string) Bundle {
	data, err := p.catalog.Lookup(ctx, city)
	switch {
	case err == nil && len(data.Forecast) == forecastDays:
		p.logger.Debug("Using catalog fallback bundle",
			ports.F("city", city),
			ports.F("backend", p.catalog.Backend()))
		return convertFromPortsBundle(data)
	case err == nil:
		p.logger.Warn("Catalog bundle has wrong forecast length, synthesizing",
			ports.F("city", city),
			ports.F("days", len(data.Forecast)))
	case !errors.IsNotFoundError(err):
		p.logger.Warn("Fallback catalog lookup failed, synthesizing",
			ports.F("city", city),
			ports.F("backend", p.catalog.Backend()),
			ports.F("error", err))
	}

	return p.synthesize(city)
}

// Forecast returns only the forecast half of the fallback bundle for city
func (p *FallbackProvider) Forecast(ctx context.Context, city string) []DailySummary {
	return p.Bundle(ctx, city).Forecast
}

func (p *FallbackProvider) synthesize(city string) Bundle {
	current := CurrentConditions{
		Location:    city,
		Temperature: p.between(15, 20),
		Condition:   "Partly Cloudy",
		Description: "partly cloudy",
		Humidity:    p.between(40, 40),
		WindSpeed:   p.between(5, 15),
		Visibility:  p.between(5, 10),
		Pressure:    p.between(1000, 30),
		UVIndex:     p.between(1, 10),
		Icon:        IconPartlyCloudy,
		FeelsLike:   p.between(17, 20),
	}

	today := p.clock.Now()
	forecast := make([]DailySummary, 0, forecastDays)
	for i, slot := range synthesizedSlots {
		forecast = append(forecast, DailySummary{
			Day:       dayLabel(i, today.AddDate(0, 0, i)),
			High:      p.between(slot.highBase, highSpread),
			Low:       p.between(slot.lowBase, lowSpread),
			Condition: slot.condition,
			Icon:      slot.icon,
		})
	}

	return Bundle{Current: current, Forecast: forecast}
}

// between draws from [base, base+spread)
func (p *FallbackProvider) between(base, spread int) int {
	return base + p.random.IntN(spread)
}

func convertFromPortsBundle(data *ports.BundleData) Bundle {
	forecast := make([]DailySummary, 0, len(data.Forecast))
	for _, day := range data.Forecast {
		forecast = append(forecast, DailySummary{
			Day:       day.Day,
			High:      day.High,
			Low:       day.Low,
			Condition: day.Condition,
			Icon:      convertIcon(day.Icon),
		})
	}

	c := data.Current
	return Bundle{
		Current: CurrentConditions{
			Location:    c.Location,
			Temperature: c.Temperature,
			Condition:   c.Condition,
			Description: c.Description,
			Humidity:    c.Humidity,
			WindSpeed:   c.WindSpeed,
			Visibility:  c.Visibility,
			Pressure:    c.Pressure,
			UVIndex:     c.UVIndex,
			Icon:        convertIcon(c.Icon),
			FeelsLike:   c.FeelsLike,
		},
		Forecast: forecast,
	}
}

func convertIcon(icon string) IconCategory {
	if category := IconCategory(icon); category.IsValid() {
		return category
	}
	return IconPartlyCloudy
}
