package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherGateway WeatherGateway
	LookupMetrics  LookupMetrics

	// Fallback
	FallbackCatalog FallbackCatalog

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Database       interface{}
}
