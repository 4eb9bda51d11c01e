package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weathrly.app/pkg/errors"
)

const (
	maxRedisDB             = 15
	maxPortNumber          = 65535
	maxTimeoutSeconds      = 120
	maxBreakerOpenSeconds  = 3600
	defaultOWMProviderName = "openweathermap"
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Weather  WeatherConfig  `split_words:"true"`
	Catalog  CatalogConfig  `split_words:"true"`
	Fallback FallbackConfig `split_words:"true"`
	Logging  LoggingConfig  `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	APIKey             string `envconfig:"OPENWEATHERMAP_API_KEY"`
	BaseURL            string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	TimeoutSeconds     int    `envconfig:"OPENWEATHERMAP_TIMEOUT_SECONDS" default:"10"`
	BreakerMaxFailures uint32 `envconfig:"WEATHER_BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenSeconds int    `envconfig:"WEATHER_BREAKER_OPEN_SECONDS" default:"60"`
}

// HasCredential reports whether live lookups are possible
func (w WeatherConfig) HasCredential() bool {
	return strings.TrimSpace(w.APIKey) != ""
}

// CatalogType represents the backend holding the fallback catalog
type CatalogType int

const (
	CatalogTypeUnknown CatalogType = iota
	CatalogTypeMemory
	CatalogTypeDatabase
	CatalogTypeRedis
)

// String returns the string representation of catalog type
func (c CatalogType) String() string {
	switch c {
	case CatalogTypeMemory:
		return "memory"
	case CatalogTypeDatabase:
		return "database"
	case CatalogTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the catalog type is valid
func (c CatalogType) IsValid() bool {
	return c == CatalogTypeMemory || c == CatalogTypeDatabase || c == CatalogTypeRedis
}

// CatalogTypeFromString converts string to CatalogType enum
func CatalogTypeFromString(s string) CatalogType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return CatalogTypeMemory
	case "database":
		return CatalogTypeDatabase
	case "redis":
		return CatalogTypeRedis
	default:
		return CatalogTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CatalogType) UnmarshalText(text []byte) error {
	*c = CatalogTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CatalogType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CatalogConfig struct {
	Type     CatalogType    `envconfig:"CATALOG_TYPE" default:"memory"`
	RedisKey string         `envconfig:"CATALOG_REDIS_KEY" default:"weathrly:fallback:cities"`
	Database DatabaseConfig `split_words:"true"`
	Redis    RedisConfig    `split_words:"true"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weathrly"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// FallbackConfig controls synthesized fallback data. Seed 0 means nondeterministic.
type FallbackConfig struct {
	Seed uint64 `envconfig:"FALLBACK_SEED" default:"0"`
}

type LoggingConfig struct {
	Level             string `envconfig:"LOG_LEVEL" default:"info"`
	EnableGatewayLogs bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	GatewayLogPath    string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_gateway.log"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

// ProviderName is the upstream reported in health checks and metrics
func (c *Config) ProviderName() string {
	return defaultOWMProviderName
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// Validate checks the upstream settings. A missing API key is allowed and selects fallback mode.
func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.TimeoutSeconds < 1 || w.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("OPENWEATHERMAP_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if w.BreakerMaxFailures < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_MAX_FAILURES must be at least 1", nil)
	}
	if w.BreakerOpenSeconds < 1 || w.BreakerOpenSeconds > maxBreakerOpenSeconds {
		return errors.NewConfigurationError("WEATHER_BREAKER_OPEN_SECONDS must be between 1 and 3600", nil)
	}
	return nil
}

func (c *CatalogConfig) Validate() error {
	switch c.Type {
	case CatalogTypeMemory:
		return nil
	case CatalogTypeDatabase:
		return c.Database.Validate()
	case CatalogTypeRedis:
		if strings.TrimSpace(c.RedisKey) == "" {
			return errors.NewConfigurationError("CATALOG_REDIS_KEY cannot be empty when using Redis catalog", nil)
		}
		return c.Redis.Validate()
	default:
		return errors.NewConfigurationError("CATALOG_TYPE must be one of: memory, database, redis", nil)
	}
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis catalog", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	if l.EnableGatewayLogs && l.GatewayLogPath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when WEATHER_ENABLE_LOGGING is true", nil)
	}
	return nil
}
