package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker"
	"weathrly.app/internal/ports"
	"weathrly.app/pkg/errors"
)

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
	openWeatherMapUserAgent      = "Weathrly-App/1.0"

	EndpointCurrent  = "weather"
	EndpointForecast = "forecast"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapGateway implements the WeatherGateway port for OpenWeatherMap
type OpenWeatherMapGateway struct {
	apiKey   string
	baseURL  string
	client   HTTPClient
	breaker  *gobreaker.CircuitBreaker
	validate *validator.Validate
	logger   ports.Logger
}

// OpenWeatherMapGatewayParams holds parameters for creating the OpenWeatherMap gateway
type OpenWeatherMapGatewayParams struct {
	APIKey             string
	BaseURL            string
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
	Client             HTTPClient
	Logger             ports.Logger
}

type owmCurrentResponse struct {
	Name       string         `json:"name" validate:"required"`
	Main       *owmMain       `json:"main" validate:"required"`
	Weather    []owmCondition `json:"weather" validate:"min=1,dive"`
	Wind       owmWind        `json:"wind"`
	Sys        owmSys         `json:"sys"`
	Visibility float64        `json:"visibility"`
}

type owmMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  float64 `json:"humidity"`
	Pressure  float64 `json:"pressure"`
}

type owmCondition struct {
	Main        string `json:"main" validate:"required"`
	Description string `json:"description"`
}

type owmWind struct {
	Speed float64 `json:"speed"`
}

type owmSys struct {
	Country string `json:"country"`
}

type owmForecastResponse struct {
	List []owmForecastItem `json:"list" validate:"dive"`
	City owmForecastCity   `json:"city"`
}

type owmForecastItem struct {
	Dt      int64          `json:"dt" validate:"gt=0"`
	Main    *owmMain       `json:"main" validate:"required"`
	Weather []owmCondition `json:"weather" validate:"min=1,dive"`
}

type owmForecastCity struct {
	Timezone int `json:"timezone"`
}

// NewOpenWeatherMapGateway creates a new OpenWeatherMap gateway guarded by a circuit breaker
func NewOpenWeatherMapGateway(params OpenWeatherMapGatewayParams) (*OpenWeatherMapGateway, error) {
	if params.APIKey == "" {
		return nil, errors.NewConfigurationError("OpenWeatherMap API key is required", nil)
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	maxFailures := params.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	openTimeout := params.BreakerOpenTimeout
	if openTimeout <= 0 {
		openTimeout = time.Minute
	}

	g := &OpenWeatherMapGateway{
		apiKey:   params.APIKey,
		baseURL:  baseURL,
		client:   client,
		validate: validator.New(),
		logger:   params.Logger,
	}

	g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "openweathermap",
		Timeout: openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// an unknown city is an answer, not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.IsNotFoundError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			g.logger.Warn("Circuit breaker state changed",
				ports.F("breaker", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		},
	})

	return g, nil
}

// FetchCurrent retrieves current conditions for city
func (g *OpenWeatherMapGateway) FetchCurrent(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	var payload owmCurrentResponse
	if err := g.fetch(ctx, EndpointCurrent, city, &payload); err != nil {
		return nil, err
	}

	return &ports.CurrentWeatherData{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		TempC:       payload.Main.Temp,
		FeelsLikeC:  payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		Pressure:    payload.Main.Pressure,
		Condition:   payload.Weather[0].Main,
		Description: payload.Weather[0].Description,
		WindSpeedMS: payload.Wind.Speed,
		VisibilityM: payload.Visibility,
	}, nil
}

// FetchForecast retrieves the 3-hourly forecast for city
func (g *OpenWeatherMapGateway) FetchForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	var payload owmForecastResponse
	if err := g.fetch(ctx, EndpointForecast, city, &payload); err != nil {
		return nil, err
	}

	entries := make([]ports.ForecastEntry, 0, len(payload.List))
	for _, item := range payload.List {
		entries = append(entries, ports.ForecastEntry{
			Timestamp: time.Unix(item.Dt, 0).UTC(),
			TempC:     item.Main.Temp,
			Condition: item.Weather[0].Main,
		})
	}

	return &ports.ForecastData{
		Entries:          entries,
		UTCOffsetSeconds: payload.City.Timezone,
	}, nil
}

// GetProviderName returns the name of this weather provider
func (g *OpenWeatherMapGateway) GetProviderName() string {
	return "openweathermap"
}

// BreakerState reports the circuit breaker state for health checks
func (g *OpenWeatherMapGateway) BreakerState() string {
	return g.breaker.State().String()
}

func (g *OpenWeatherMapGateway) fetch(ctx context.Context, endpoint, city string, out interface{}) error {
	if city == "" {
		return errors.NewValidationError("city cannot be empty")
	}

	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", g.apiKey)
	values.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s?%s", g.baseURL, endpoint, values.Encode()), nil)
	if err != nil {
		return errors.NewTransportError("failed to build OpenWeatherMap request", err)
	}
	req.Header.Set("User-Agent", openWeatherMapUserAgent)

	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.do(req)
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return errors.NewExternalAPIError("OpenWeatherMap circuit breaker open", err)
		}
		return err
	}

	body, ok := result.([]byte)
	if !ok {
		return errors.NewParseError("unexpected result type from circuit breaker", nil)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewParseError(fmt.Sprintf("failed to decode OpenWeatherMap %s response", endpoint), err)
	}
	if err := g.validate.Struct(out); err != nil {
		return errors.NewParseError(fmt.Sprintf("malformed OpenWeatherMap %s response", endpoint), err)
	}

	return nil
}

func (g *OpenWeatherMapGateway) do(req *http.Request) ([]byte, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.NewTransportError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			g.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errors.NewNotFoundError("city not found")
	case http.StatusUnauthorized:
		return nil, errors.NewUnauthorizedError("OpenWeatherMap rejected the API key")
	default:
		return nil, errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError("failed to read OpenWeatherMap response", err)
	}
	return body, nil
}
