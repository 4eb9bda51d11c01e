package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathrly.app/pkg/errors"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Weather: WeatherConfig{
			BaseURL:            "https://api.openweathermap.org/data/2.5",
			TimeoutSeconds:     10,
			BreakerMaxFailures: 5,
			BreakerOpenSeconds: 60,
		},
		Catalog: CatalogConfig{
			Type:     CatalogTypeMemory,
			RedisKey: "weathrly:fallback:cities",
			Database: DatabaseConfig{Host: "localhost", Port: 5432, User: "postgres", Name: "weathrly", SSLMode: "disable"},
			Redis:    RedisConfig{Addr: "localhost:6379", DialTimeout: 5, ReadTimeout: 3, WriteTimeout: 3},
		},
		Logging: LoggingConfig{Level: "info", EnableGatewayLogs: true, GatewayLogPath: "logs/weather_gateway.log"},
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("OPENWEATHERMAP_API_KEY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.Weather.BaseURL)
	assert.Equal(t, 10, cfg.Weather.TimeoutSeconds)
	assert.Equal(t, uint32(5), cfg.Weather.BreakerMaxFailures)
	assert.Equal(t, 60, cfg.Weather.BreakerOpenSeconds)
	assert.False(t, cfg.Weather.HasCredential())
	assert.Equal(t, CatalogTypeMemory, cfg.Catalog.Type)
	assert.Equal(t, "weathrly:fallback:cities", cfg.Catalog.RedisKey)
	assert.Equal(t, uint64(0), cfg.Fallback.Seed)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OPENWEATHERMAP_API_KEY", "secret")
	t.Setenv("OPENWEATHERMAP_TIMEOUT_SECONDS", "3")
	t.Setenv("CATALOG_TYPE", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("FALLBACK_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Weather.HasCredential())
	assert.Equal(t, 3, cfg.Weather.TimeoutSeconds)
	assert.Equal(t, CatalogTypeRedis, cfg.Catalog.Type)
	assert.Equal(t, "cache:6379", cfg.Catalog.Redis.Addr)
	assert.Equal(t, "pg", cfg.Catalog.Database.Host)
	assert.Equal(t, uint64(42), cfg.Fallback.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_InvalidCatalogType(t *testing.T) {
	t.Setenv("CATALOG_TYPE", "mongo")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "CATALOG_TYPE")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{name: "PortTooHigh", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "SERVER_PORT"},
		{name: "EmptyBaseURL", mutate: func(c *Config) { c.Weather.BaseURL = "" }, wantErr: "OPENWEATHERMAP_API_BASE_URL cannot be empty"},
		{name: "BaseURLScheme", mutate: func(c *Config) { c.Weather.BaseURL = "ftp://owm" }, wantErr: "must start with http"},
		{name: "ZeroTimeout", mutate: func(c *Config) { c.Weather.TimeoutSeconds = 0 }, wantErr: "OPENWEATHERMAP_TIMEOUT_SECONDS"},
		{name: "ZeroBreakerFailures", mutate: func(c *Config) { c.Weather.BreakerMaxFailures = 0 }, wantErr: "WEATHER_BREAKER_MAX_FAILURES"},
		{name: "BreakerOpenTooLong", mutate: func(c *Config) { c.Weather.BreakerOpenSeconds = 7200 }, wantErr: "WEATHER_BREAKER_OPEN_SECONDS"},
		{name: "UnknownCatalog", mutate: func(c *Config) { c.Catalog.Type = CatalogTypeUnknown }, wantErr: "CATALOG_TYPE"},
		{
			name: "DatabaseCatalogWithoutHost",
			mutate: func(c *Config) {
				c.Catalog.Type = CatalogTypeDatabase
				c.Catalog.Database.Host = ""
			},
			wantErr: "DB_HOST",
		},
		{
			name: "DatabaseCatalogBadSSLMode",
			mutate: func(c *Config) {
				c.Catalog.Type = CatalogTypeDatabase
				c.Catalog.Database.SSLMode = "maybe"
			},
			wantErr: "DB_SSL_MODE",
		},
		{
			name: "MemoryCatalogIgnoresDatabase",
			mutate: func(c *Config) {
				c.Catalog.Database.Host = ""
			},
		},
		{
			name: "RedisCatalogWithoutKey",
			mutate: func(c *Config) {
				c.Catalog.Type = CatalogTypeRedis
				c.Catalog.RedisKey = " "
			},
			wantErr: "CATALOG_REDIS_KEY",
		},
		{
			name: "RedisCatalogBadDB",
			mutate: func(c *Config) {
				c.Catalog.Type = CatalogTypeRedis
				c.Catalog.Redis.DB = 16
			},
			wantErr: "REDIS_DB",
		},
		{name: "BadLogLevel", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: "LOG_LEVEL"},
		{name: "GatewayLogWithoutPath", mutate: func(c *Config) { c.Logging.GatewayLogPath = "" }, wantErr: "WEATHER_LOG_FILE_PATH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalogTypeFromString(t *testing.T) {
	assert.Equal(t, CatalogTypeMemory, CatalogTypeFromString("memory"))
	assert.Equal(t, CatalogTypeDatabase, CatalogTypeFromString("Database"))
	assert.Equal(t, CatalogTypeRedis, CatalogTypeFromString(" redis "))
	assert.Equal(t, CatalogTypeUnknown, CatalogTypeFromString("etcd"))
	assert.Equal(t, "database", CatalogTypeDatabase.String())
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	dsn := validConfig().Catalog.Database.GetDSN()
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=weathrly sslmode=disable", dsn)
}
