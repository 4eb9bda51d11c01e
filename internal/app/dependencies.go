package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"weathrly.app/internal/adapters/external"
	"weathrly.app/internal/adapters/infrastructure"
	"weathrly.app/internal/config"
	"weathrly.app/internal/core/weather"
	"weathrly.app/internal/ports"
)

// DatabaseOpener opens the gorm connection used by the database catalog
type DatabaseOpener func(cfg config.DatabaseConfig) (*gorm.DB, error)

type DependencyContainer struct {
	config   DependencyConfig
	db       *gorm.DB
	registry *prometheus.Registry
	gateway  *external.OpenWeatherMapGateway
	fallback *weather.FallbackProvider
	closers  []func() error
	ports    *ports.ApplicationPorts
}

type DependencyConfig struct {
	Config       *config.Config
	Clock        clockwork.Clock
	LogOutput    io.Writer
	OpenDatabase DatabaseOpener
}

func openPostgres(cfg config.DatabaseConfig) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{})
}

func NewDependencyContainer(ctx context.Context, depConfig DependencyConfig) (*DependencyContainer, error) {
	if depConfig.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if depConfig.Clock == nil {
		depConfig.Clock = clockwork.NewRealClock()
	}
	if depConfig.LogOutput == nil {
		depConfig.LogOutput = os.Stdout
	}
	if depConfig.OpenDatabase == nil {
		depConfig.OpenDatabase = openPostgres
	}

	container := &DependencyContainer{
		config:   depConfig,
		registry: prometheus.NewRegistry(),
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(ctx); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

// initializeDatabase connects only when the database catalog is selected
func (c *DependencyContainer) initializeDatabase() error {
	cfg := c.config.Config
	if cfg.Catalog.Type != config.CatalogTypeDatabase {
		return nil
	}

	slog.Info("Initializing database connection...")
	db, err := c.config.OpenDatabase(cfg.Catalog.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts(ctx context.Context) error {
	slog.Info("Initializing ports...")
	cfg := c.config.Config

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	lookupMetrics := infrastructure.NewLookupMetrics(c.registry)

	baseLogger := infrastructure.NewSlogLoggerAdapter(c.config.LogOutput, cfg.Logging.Level)
	var logger ports.Logger = baseLogger

	catalog, err := external.NewCatalogFactory(logger).CreateCatalog(ctx, &cfg.Catalog, c.db)
	if err != nil {
		return fmt.Errorf("create fallback catalog: %w", err)
	}
	if closer, ok := catalog.(io.Closer); ok {
		c.closers = append(c.closers, closer.Close)
	}
	slog.Info("Fallback catalog initialized", "type", cfg.Catalog.Type.String())

	fallback, err := weather.NewFallbackProvider(weather.FallbackDependencies{
		Catalog: catalog,
		Random:  weather.NewRandomSource(cfg.Fallback.Seed),
		Clock:   c.config.Clock,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("create fallback provider: %w", err)
	}
	c.fallback = fallback

	var gateway ports.WeatherGateway
	if cfg.Weather.HasCredential() {
		gateway, err = c.initializeGateway(logger, lookupMetrics)
		if err != nil {
			return err
		}
	} else {
		slog.Warn("OPENWEATHERMAP_API_KEY not set, serving fallback data only")
	}

	c.ports = &ports.ApplicationPorts{
		WeatherGateway:  gateway,
		LookupMetrics:   lookupMetrics,
		FallbackCatalog: catalog,
		ConfigProvider:  infrastructure.NewConfigProviderAdapter(cfg),
		Logger:          logger,
		Database:        c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) initializeGateway(logger ports.Logger, metrics ports.LookupMetrics) (ports.WeatherGateway, error) {
	cfg := c.config.Config

	gateway, err := external.NewOpenWeatherMapGateway(external.OpenWeatherMapGatewayParams{
		APIKey:             cfg.Weather.APIKey,
		BaseURL:            cfg.Weather.BaseURL,
		Timeout:            time.Duration(cfg.Weather.TimeoutSeconds) * time.Second,
		BreakerMaxFailures: cfg.Weather.BreakerMaxFailures,
		BreakerOpenTimeout: time.Duration(cfg.Weather.BreakerOpenSeconds) * time.Second,
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create weather gateway: %w", err)
	}
	c.gateway = gateway

	gatewayLogger := logger
	if cfg.Logging.EnableGatewayLogs && cfg.Logging.GatewayLogPath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(cfg.Logging.GatewayLogPath, c.config.Clock)
		if err != nil {
			slog.Warn("Failed to create gateway file logger, using stdout only", "error", err)
		} else {
			gatewayLogger = infrastructure.NewMultiLogger(logger, fileLogger)
			slog.Info("Gateway file logging enabled", "path", cfg.Logging.GatewayLogPath)
		}
	}

	return external.NewWeatherGatewayLoggingDecorator(gateway, gatewayLogger, metrics, c.config.Clock), nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Registry is the Prometheus registry served on /metrics
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// Fallback returns the fallback provider shared by all lookups
func (c *DependencyContainer) Fallback() *weather.FallbackProvider {
	return c.fallback
}

// BreakerReporter returns the undecorated gateway, or nil in fallback-only mode
func (c *DependencyContainer) BreakerReporter() infrastructure.BreakerReporter {
	if c.gateway == nil {
		return nil
	}
	return c.gateway
}

// Cleanup closes catalog connections and the database
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			if err := db.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
