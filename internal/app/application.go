package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"weathrly.app/internal/adapters/api"
	"weathrly.app/internal/adapters/infrastructure"
	"weathrly.app/internal/config"
	"weathrly.app/internal/core/weather"
)

type Application struct {
	config *config.Config

	weatherUseCase *weather.UseCase

	httpAdapter *api.HTTPServerAdapter

	deps *DependencyContainer
}

func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(ctx, DependencyConfig{Config: cfg})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")
	p := a.deps.ApplicationPorts()

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Gateway:  p.WeatherGateway,
		Fallback: a.deps.Fallback(),
		Config:   p.ConfigProvider,
		Logger:   p.Logger,
		Metrics:  p.LookupMetrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")
	p := a.deps.ApplicationPorts()

	healthConfig := infrastructure.SystemHealthCheckerConfig{
		CatalogChecker: infrastructure.NewCatalogHealthChecker(p.FallbackCatalog),
		GatewayChecker: infrastructure.NewWeatherGatewayHealthChecker(
			p.WeatherGateway, a.deps.BreakerReporter(), p.ConfigProvider),
		ConfigProvider: p.ConfigProvider,
	}
	if db := a.deps.Database(); db != nil {
		healthConfig.DatabaseChecker = infrastructure.NewDatabaseHealthChecker(db)
	}

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		WeatherUseCase: a.weatherUseCase,
		HealthChecker:  infrastructure.NewSystemHealthChecker(healthConfig),
		Gatherer:       a.deps.Registry(),
		Logger:         p.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpAdapter = httpAdapter

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until ctx is cancelled
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if err := a.httpAdapter.Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown releases catalog and database connections. The HTTP server stops with Start's context.
func (a *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
		return fmt.Errorf("release resources: %w", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpAdapter.GetRouter()
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}
