package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathrly.app/internal/ports"
)

const statusUnhealthy = "unhealthy"

// HealthResponse reports overall and per-component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health. Only unhealthy components turn the response into a 503.
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: "healthy", Components: components}
	code := http.StatusOK
	for _, component := range components {
		if component.Status == statusUnhealthy {
			response.Status = statusUnhealthy
			code = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, response)
}
