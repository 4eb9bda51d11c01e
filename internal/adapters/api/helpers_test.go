package api

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathrly.app/internal/mocks"
	"weathrly.app/internal/ports"
)

// setupLoggerMock allows any log call; fields are variadic so each arity needs its own expectation
func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		for arity := 1; arity <= 10; arity++ {
			args := make([]interface{}, arity)
			for i := range args {
				args[i] = mock.Anything
			}
			mockLogger.On(level, args...).Maybe()
		}
	}
	return mockLogger
}

type stubHealthChecker struct {
	results map[string]ports.HealthStatus
}

func (s *stubHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return s.results
}

func healthyChecker() *stubHealthChecker {
	return &stubHealthChecker{results: map[string]ports.HealthStatus{
		"catalog": {Component: "fallback_catalog", Status: "healthy"},
	}}
}

func newTestServer(t *testing.T, useCase WeatherUseCase, health ports.SystemHealthChecker, registry *prometheus.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)

	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:         ServerConfig{Port: 8080},
		WeatherUseCase: useCase,
		HealthChecker:  health,
		Gatherer:       registry,
		Logger:         setupLoggerMock(t),
	})
	require.NoError(t, err)

	return server.GetRouter()
}
