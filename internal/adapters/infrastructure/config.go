package infrastructure

import (
	"weathrly.app/internal/config"
	"weathrly.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetWeatherConfig returns weather lookup configuration. The API key itself never leaves the config package.
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		HasCredential: c.config.Weather.HasCredential(),
		ProviderName:  c.config.ProviderName(),
	}
}

// GetCatalogConfig returns fallback catalog configuration
func (c *ConfigProviderAdapter) GetCatalogConfig() ports.CatalogConfig {
	return ports.CatalogConfig{
		Type: c.config.Catalog.Type.String(),
	}
}
