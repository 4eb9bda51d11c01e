package weather

// iconByLabel covers the provider's "main" weather groups
var iconByLabel = map[string]IconCategory{
	"Clear":        IconSunny,
	"Clouds":       IconCloudy,
	"Rain":         IconRainy,
	"Drizzle":      IconRainy,
	"Thunderstorm": IconRainy,
	"Snow":         IconSnowy,
	"Mist":         IconCloudy,
	"Smoke":        IconCloudy,
	"Haze":         IconCloudy,
	"Dust":         IconCloudy,
	"Fog":          IconCloudy,
	"Sand":         IconCloudy,
	"Ash":          IconCloudy,
	"Squall":       IconCloudy,
	"Tornado":      IconCloudy,
}

// Classify maps a provider condition label to a display category.
// Unknown labels map to partly-cloudy.
func Classify(label string) IconCategory {
	if icon, ok := iconByLabel[label]; ok {
		return icon
	}
	return IconPartlyCloudy
}
