package ports

import (
	"time"
)

// WeatherConfig represents weather lookup configuration
type WeatherConfig struct {
	HasCredential bool
	ProviderName  string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// CatalogConfig represents fallback catalog configuration
type CatalogConfig struct {
	Type string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetServerConfig() ServerConfig
	GetCatalogConfig() CatalogConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LookupMetrics defines the contract for lookup and upstream metrics
type LookupMetrics interface {
	RecordLookup(source string)
	RecordNotFound()
	RecordUpstreamCall(endpoint, outcome string, duration time.Duration)
}
