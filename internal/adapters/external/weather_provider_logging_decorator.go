package external

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"weathrly.app/internal/ports"
	"weathrly.app/pkg/errors"
)

// WeatherGatewayLoggingDecorator decorates a weather gateway with structured logging and
// upstream call metrics
type WeatherGatewayLoggingDecorator struct {
	gateway ports.WeatherGateway
	logger  ports.Logger
	metrics ports.LookupMetrics
	clock   clockwork.Clock
}

// NewWeatherGatewayLoggingDecorator creates a new logging decorator for a weather gateway.
// A nil clock uses the real clock.
func NewWeatherGatewayLoggingDecorator(gateway ports.WeatherGateway, logger ports.Logger, metrics ports.LookupMetrics, clock clockwork.Clock) ports.WeatherGateway {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &WeatherGatewayLoggingDecorator{
		gateway: gateway,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
}

// FetchCurrent wraps the gateway call with structured logging
func (d *WeatherGatewayLoggingDecorator) FetchCurrent(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	start := d.begin(EndpointCurrent, city)

	data, err := d.gateway.FetchCurrent(ctx, city)
	if err != nil {
		d.fail(EndpointCurrent, city, start, err)
		return nil, err
	}

	d.succeed(EndpointCurrent, city, start,
		ports.F("temperature", data.TempC),
		ports.F("condition", data.Condition))
	return data, nil
}

// FetchForecast wraps the gateway call with structured logging
func (d *WeatherGatewayLoggingDecorator) FetchForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	start := d.begin(EndpointForecast, city)

	data, err := d.gateway.FetchForecast(ctx, city)
	if err != nil {
		d.fail(EndpointForecast, city, start, err)
		return nil, err
	}

	d.succeed(EndpointForecast, city, start,
		ports.F("entries", len(data.Entries)),
		ports.F("utc_offset_seconds", data.UTCOffsetSeconds))
	return data, nil
}

// GetProviderName returns the name of the wrapped gateway with logging indication
func (d *WeatherGatewayLoggingDecorator) GetProviderName() string {
	return "logged(" + d.gateway.GetProviderName() + ")"
}

func (d *WeatherGatewayLoggingDecorator) begin(endpoint, city string) time.Time {
	d.logger.Info("Weather API request started",
		ports.F("provider", d.gateway.GetProviderName()),
		ports.F("endpoint", endpoint),
		ports.F("city", city),
		ports.F("event", "request"))
	return d.clock.Now()
}

func (d *WeatherGatewayLoggingDecorator) fail(endpoint, city string, start time.Time, err error) {
	duration := d.clock.Since(start)
	outcome := outcomeFor(err)
	d.metrics.RecordUpstreamCall(endpoint, outcome, duration)

	d.logger.Error("Weather API request failed",
		ports.F("provider", d.gateway.GetProviderName()),
		ports.F("endpoint", endpoint),
		ports.F("city", city),
		ports.F("event", "error"),
		ports.F("outcome", outcome),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("error", err.Error()))
}

func (d *WeatherGatewayLoggingDecorator) succeed(endpoint, city string, start time.Time, fields ...ports.Field) {
	duration := d.clock.Since(start)
	d.metrics.RecordUpstreamCall(endpoint, "success", duration)

	base := []ports.Field{
		ports.F("provider", d.gateway.GetProviderName()),
		ports.F("endpoint", endpoint),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	d.logger.Info("Weather API request completed", append(base, fields...)...)
}

// outcomeFor maps a gateway error to a low-cardinality metric label
func outcomeFor(err error) string {
	switch errors.TypeOf(err) {
	case errors.ErrorTypeNotFound:
		return "not_found"
	case errors.ErrorTypeUnauthorized:
		return "unauthorized"
	case errors.ErrorTypeExternalAPI:
		return "upstream_error"
	case errors.ErrorTypeTransport:
		return "transport_error"
	case errors.ErrorTypeParse:
		return "parse_error"
	default:
		return "error"
	}
}
