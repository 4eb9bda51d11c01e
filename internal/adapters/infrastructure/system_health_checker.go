package infrastructure

import (
	"context"

	"weathrly.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	CatalogChecker  ports.HealthChecker
	GatewayChecker  ports.HealthChecker
	DatabaseChecker ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker. Nil checkers are skipped.
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.CatalogChecker != nil {
		checkers["catalog"] = config.CatalogChecker
	}
	if config.GatewayChecker != nil {
		checkers["weatherAPI"] = config.GatewayChecker
	}
	if config.DatabaseChecker != nil {
		checkers["database"] = config.DatabaseChecker
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}

	if s.configProvider != nil {
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"catalogType": s.configProvider.GetCatalogConfig().Type,
				"port":        s.configProvider.GetServerConfig().Port,
			},
		}
	}

	return results
}
