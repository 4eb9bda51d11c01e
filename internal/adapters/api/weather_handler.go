package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathrly.app/internal/core/weather"
	"weathrly.app/pkg/errors"
)

const weatherSourceHeader = "X-Weather-Source"

type weatherQuery struct {
	City string `form:"city" binding:"required,notblank"`
}

type citiesQuery struct {
	Query string `form:"q"`
}

// WeatherResponse is the bundle shape returned to the browser
type WeatherResponse struct {
	Current  weather.CurrentConditions `json:"current"`
	Forecast []weather.DailySummary    `json:"forecast"`
	Alerts   []weather.Alert           `json:"alerts,omitempty"`
}

// CitiesResponse lists city suggestions for a search box
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// getWeather handles GET /api/weather
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query weatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("City parameter is required"))
		return
	}

	result, err := s.weatherUseCase.Lookup(c.Request.Context(), weather.LookupRequest{City: query.City})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.Header(weatherSourceHeader, result.Source.String())
	c.JSON(http.StatusOK, WeatherResponse{
		Current:  result.Bundle.Current,
		Forecast: result.Bundle.Forecast,
		Alerts:   result.Alerts,
	})
}

// getCities handles GET /api/cities
func (s *HTTPServerAdapter) getCities(c *gin.Context) {
	var query citiesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("invalid query"))
		return
	}

	c.JSON(http.StatusOK, CitiesResponse{
		Cities: s.weatherUseCase.Suggest(c.Request.Context(), query.Query),
	})
}
