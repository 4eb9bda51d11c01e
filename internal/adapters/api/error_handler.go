package api

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"weathrly.app/internal/ports"
	"weathrly.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps application errors to HTTP responses. Only validation messages reach the client verbatim.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var statusCode int
	var message string

	switch errors.TypeOf(err) {
	case errors.ValidationError:
		statusCode = http.StatusBadRequest
		message = validationMessage(err)
	case errors.NotFoundError:
		statusCode = http.StatusNotFound
		message = "City not found"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
		s.logger.Error("Request failed",
			ports.F("request_id", c.GetString(requestIDKey)),
			ports.F("error", err))
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

func validationMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
