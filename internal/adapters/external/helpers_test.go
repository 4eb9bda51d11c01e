package external

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"weathrly.app/internal/mocks"
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
