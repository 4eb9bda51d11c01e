package weather

import (
	"context"
	"fmt"
	"time"

	"weathrly.app/internal/ports"
	"weathrly.app/pkg/errors"
)

type UseCase struct {
	gateway  ports.WeatherGateway
	fallback *FallbackProvider
	config   ports.ConfigProvider
	logger   ports.Logger
	metrics  ports.LookupMetrics
}

type UseCaseDependencies struct {
	Gateway  ports.WeatherGateway
	Fallback *FallbackProvider
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.LookupMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Fallback == nil {
		return nil, errors.NewValidationError("fallback provider is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Gateway == nil && deps.Config.GetWeatherConfig().HasCredential {
		return nil, errors.NewValidationError("weather gateway is required when a credential is configured")
	}

	return &UseCase{
		gateway:  deps.Gateway,
		fallback: deps.Fallback,
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}, nil
}

// Lookup returns the weather bundle for a city. Provider failures are absorbed by
// substituting fallback data; only a confirmed unknown city is returned as an error.
func (uc *UseCase) Lookup(ctx context.Context, request LookupRequest) (*LookupResult, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid lookup request: " + err.Error())
	}

	request.NormalizeCity()
	city := request.City

	if uc.gateway == nil || !uc.config.GetWeatherConfig().HasCredential {
		uc.logger.Info("Weather provider credential not configured, using fallback data",
			ports.F("city", city))
		return uc.finish(city, uc.fallback.Bundle(ctx, city), SourceFallback), nil
	}

	result, err := uc.lookupLive(ctx, city)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.metrics.RecordNotFound()
			uc.logger.Info("City not found", ports.F("city", city))
			return nil, fmt.Errorf("lookup weather for city %s: %w", city, err)
		}

		uc.logger.Warn("Live weather unavailable, using fallback data",
			ports.F("city", city),
			ports.F("error_type", errors.TypeOf(err).String()),
			ports.F("error", err))
		return uc.finish(city, uc.fallback.Bundle(ctx, city), SourceFallback), nil
	}

	return result, nil
}

func (uc *UseCase) lookupLive(ctx context.Context, city string) (result *LookupResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("live lookup panicked: %v", r)
		}
	}()

	currentData, err := uc.gateway.FetchCurrent(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("fetch current weather: %w", err)
	}
	current := Normalize(convertFromPortsCurrent(currentData))

	forecastData, err := uc.gateway.FetchForecast(ctx, city)
	if err != nil {
		if !isStatusError(err) {
			return nil, fmt.Errorf("fetch forecast: %w", err)
		}
		uc.logger.Warn("Forecast unavailable, using fallback forecast",
			ports.F("city", city),
			ports.F("error_type", errors.TypeOf(err).String()),
			ports.F("error", err))
		bundle := Bundle{Current: current, Forecast: uc.fallback.Forecast(ctx, city)}
		return uc.finish(city, bundle, SourcePartial), nil
	}

	loc := time.FixedZone("", forecastData.UTCOffsetSeconds)
	bundle := Bundle{
		Current:  current,
		Forecast: Aggregate(convertFromPortsForecast(forecastData), loc),
	}
	return uc.finish(city, bundle, SourceLive), nil
}

func (uc *UseCase) finish(city string, bundle Bundle, source Source) *LookupResult {
	uc.metrics.RecordLookup(source.String())
	uc.logger.Debug("Weather lookup completed",
		ports.F("city", city),
		ports.F("source", source.String()),
		ports.F("forecast_days", len(bundle.Forecast)))

	return &LookupResult{
		Bundle: bundle,
		Source: source,
		Alerts: DetectAlerts(bundle.Current),
	}
}

// isStatusError reports whether the provider answered with a non-success status.
// Only those forecast failures keep the live current conditions.
func isStatusError(err error) bool {
	switch errors.TypeOf(err) {
	case errors.ExternalAPIError, errors.UnauthorizedError, errors.NotFoundError:
		return true
	default:
		return false
	}
}

// Suggest returns city name suggestions for a search query
func (uc *UseCase) Suggest(ctx context.Context, query string) []string {
	return SuggestCities(query)
}

func convertFromPortsCurrent(data *ports.CurrentWeatherData) RawCurrent {
	return RawCurrent{
		Name:        data.City,
		Country:     data.Country,
		TempC:       data.TempC,
		FeelsLikeC:  data.FeelsLikeC,
		Humidity:    data.Humidity,
		Pressure:    data.Pressure,
		Condition:   data.Condition,
		Description: data.Description,
		WindSpeedMS: data.WindSpeedMS,
		VisibilityM: data.VisibilityM,
	}
}

func convertFromPortsForecast(data *ports.ForecastData) []Reading {
	readings := make([]Reading, 0, len(data.Entries))
	for _, entry := range data.Entries {
		readings = append(readings, Reading{
			Timestamp:    entry.Timestamp,
			TemperatureC: entry.TempC,
			Condition:    entry.Condition,
		})
	}
	return readings
}
