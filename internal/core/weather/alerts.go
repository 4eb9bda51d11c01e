package weather

import "fmt"

// AlertType identifies the kind of weather alert
type AlertType string

const (
	AlertHeat   AlertType = "heat"
	AlertFreeze AlertType = "freeze"
	AlertWind   AlertType = "wind"
	AlertStorm  AlertType = "storm"
)

const (
	heatThresholdC   = 35
	freezeThresholdC = 0
	highWindKmh      = 20
	stormWindKmh     = 15
)

// Alert is a warning derived from current conditions
type Alert struct {
	Type    AlertType `json:"type"`
	Message string    `json:"message"`
}

// DetectAlerts derives heat, freeze, wind and storm warnings from current conditions
func DetectAlerts(current CurrentConditions) []Alert {
	var alerts []Alert

	switch {
	case current.Temperature > heatThresholdC:
		alerts = append(alerts, Alert{
			Type:    AlertHeat,
			Message: fmt.Sprintf("Heat warning in %s: %d°C", current.Location, current.Temperature),
		})
	case current.Temperature < freezeThresholdC:
		alerts = append(alerts, Alert{
			Type:    AlertFreeze,
			Message: fmt.Sprintf("Freeze warning in %s: %d°C", current.Location, current.Temperature),
		})
	}

	if current.WindSpeed > highWindKmh {
		alerts = append(alerts, Alert{
			Type:    AlertWind,
			Message: fmt.Sprintf("High wind alert in %s: %d km/h", current.Location, current.WindSpeed),
		})
	}

	if current.Icon == IconRainy && current.WindSpeed > stormWindKmh {
		alerts = append(alerts, Alert{
			Type:    AlertStorm,
			Message: fmt.Sprintf("Storm warning in %s", current.Location),
		})
	}

	return alerts
}
