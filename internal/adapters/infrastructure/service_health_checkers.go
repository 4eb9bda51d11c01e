package infrastructure

import (
	"context"

	"weathrly.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

func unhealthy(status ports.HealthStatus, reason string) ports.HealthStatus {
	status.Status = statusUnhealthy
	status.Error = reason
	return status
}

// CatalogHealthChecker verifies the fallback catalog backend can be read
type CatalogHealthChecker struct {
	catalog ports.FallbackCatalog
}

// NewCatalogHealthChecker creates a new catalog health checker
func NewCatalogHealthChecker(catalog ports.FallbackCatalog) *CatalogHealthChecker {
	return &CatalogHealthChecker{catalog: catalog}
}

// Check lists the catalogued cities. A failing catalog degrades lookups to synthesized data
// but never fails them, so it is reported as degraded.
func (c *CatalogHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "catalog",
		Details:   make(map[string]interface{}),
	}

	if c.catalog == nil {
		return unhealthy(status, "fallback catalog is not available")
	}
	status.Details["backend"] = c.catalog.Backend()

	cities, err := c.catalog.Cities(ctx)
	if err != nil {
		status.Status = statusDegraded
		status.Error = err.Error()
		return status
	}

	status.Status = statusHealthy
	status.Details["cities"] = len(cities)
	return status
}

// BreakerReporter is implemented by gateways guarded by a circuit breaker
type BreakerReporter interface {
	BreakerState() string
}

// WeatherGatewayHealthChecker reports whether live lookups are possible
type WeatherGatewayHealthChecker struct {
	gateway ports.WeatherGateway
	breaker BreakerReporter
	config  ports.ConfigProvider
}

// NewWeatherGatewayHealthChecker creates a new upstream health checker. gateway and breaker may be nil
// when no credential is configured.
func NewWeatherGatewayHealthChecker(gateway ports.WeatherGateway, breaker BreakerReporter, config ports.ConfigProvider) *WeatherGatewayHealthChecker {
	return &WeatherGatewayHealthChecker{gateway: gateway, breaker: breaker, config: config}
}

// Check reports the upstream state without calling it. Fallback mode is degraded, not unhealthy:
// lookups still answer.
func (w *WeatherGatewayHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	weatherConfig := w.config.GetWeatherConfig()
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Details: map[string]interface{}{
			"provider":      weatherConfig.ProviderName,
			"hasCredential": weatherConfig.HasCredential,
		},
	}

	if !weatherConfig.HasCredential || w.gateway == nil {
		status.Status = statusDegraded
		status.Details["mode"] = "fallback"
		return status
	}

	status.Status = statusHealthy
	status.Details["mode"] = "live"
	if w.breaker != nil {
		state := w.breaker.BreakerState()
		status.Details["breaker"] = state
		if state == "open" {
			status.Status = statusDegraded
		}
	}
	return status
}
