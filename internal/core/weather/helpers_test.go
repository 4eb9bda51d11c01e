package weather

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"weathrly.app/internal/mocks"
	"weathrly.app/pkg/errors"
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

// emptyCatalogMock returns a catalog that knows no cities
func emptyCatalogMock(t *testing.T) *mocks.FallbackCatalog {
	mockCatalog := mocks.NewFallbackCatalog(t)
	mockCatalog.EXPECT().Lookup(mock.Anything, mock.Anything).
		Return(nil, errors.NewNotFoundError("city not in catalog")).Maybe()
	mockCatalog.EXPECT().Backend().Return("memory").Maybe()
	return mockCatalog
}
