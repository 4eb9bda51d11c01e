package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour int) time.Time {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, time.UTC)
}

func TestAggregate_EmptyInput(t *testing.T) {
	summaries := Aggregate(nil, time.UTC)
	assert.Empty(t, summaries)
}

func TestAggregate_TwoDays(t *testing.T) {
	readings := []Reading{
		{Timestamp: at(1, 9), TemperatureC: 20, Condition: "Rain"},
		{Timestamp: at(1, 15), TemperatureC: 25, Condition: "Clouds"},
		{Timestamp: at(2, 9), TemperatureC: 18, Condition: "Clear"},
	}

	summaries := Aggregate(readings, time.UTC)

	expected := []DailySummary{
		{Day: "Today", High: 25, Low: 20, Condition: "Rain", Icon: IconRainy},
		{Day: "Tomorrow", High: 18, Low: 18, Condition: "Clear", Icon: IconSunny},
	}
	assert.Equal(t, expected, summaries)
}

func TestAggregate_TruncatesToFiveDays(t *testing.T) {
	var readings []Reading
	for day := 1; day <= 6; day++ {
		for _, hour := range []int{0, 12} {
			readings = append(readings, Reading{
				Timestamp:    at(day, hour),
				TemperatureC: float64(day),
				Condition:    "Clear",
			})
		}
	}

	summaries := Aggregate(readings, time.UTC)

	require.Len(t, summaries, 5)
	// 2024-01-01 is a Monday
	labels := []string{"Today", "Tomorrow", "Wednesday", "Thursday", "Friday"}
	for i, summary := range summaries {
		assert.Equal(t, labels[i], summary.Day)
		assert.Equal(t, i+1, summary.High)
		assert.Equal(t, i+1, summary.Low)
	}
}

func TestAggregate_DayCount(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		expected int
	}{
		{"OneDay", 1, 1},
		{"ThreeDays", 3, 3},
		{"FiveDays", 5, 5},
		{"EightDays", 8, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var readings []Reading
			for day := 1; day <= tt.days; day++ {
				readings = append(readings, Reading{Timestamp: at(day, 6), TemperatureC: 10, Condition: "Snow"})
			}
			assert.Len(t, Aggregate(readings, nil), tt.expected)
		})
	}
}

func TestAggregate_ModeTieGoesToFirstSeen(t *testing.T) {
	readings := []Reading{
		{Timestamp: at(1, 0), TemperatureC: 5, Condition: "Rain"},
		{Timestamp: at(1, 3), TemperatureC: 6, Condition: "Clouds"},
		{Timestamp: at(1, 6), TemperatureC: 7, Condition: "Rain"},
		{Timestamp: at(1, 9), TemperatureC: 8, Condition: "Clouds"},
	}

	summaries := Aggregate(readings, time.UTC)

	require.Len(t, summaries, 1)
	assert.Equal(t, "Rain", summaries[0].Condition)
	assert.Equal(t, IconRainy, summaries[0].Icon)
}

func TestAggregate_IconModeIndependentOfCondition(t *testing.T) {
	// Mist, Fog and Clouds are all cloudy even though Rain is the single most common label
	readings := []Reading{
		{Timestamp: at(1, 0), TemperatureC: 5, Condition: "Rain"},
		{Timestamp: at(1, 3), TemperatureC: 5, Condition: "Rain"},
		{Timestamp: at(1, 6), TemperatureC: 5, Condition: "Mist"},
		{Timestamp: at(1, 9), TemperatureC: 5, Condition: "Fog"},
		{Timestamp: at(1, 12), TemperatureC: 5, Condition: "Clouds"},
	}

	summaries := Aggregate(readings, time.UTC)

	require.Len(t, summaries, 1)
	assert.Equal(t, "Rain", summaries[0].Condition)
	assert.Equal(t, IconCloudy, summaries[0].Icon)
}

func TestAggregate_RoundsHalfUp(t *testing.T) {
	readings := []Reading{
		{Timestamp: at(1, 0), TemperatureC: -2.5, Condition: "Snow"},
		{Timestamp: at(1, 12), TemperatureC: 24.5, Condition: "Snow"},
	}

	summaries := Aggregate(readings, time.UTC)

	require.Len(t, summaries, 1)
	assert.Equal(t, 25, summaries[0].High)
	assert.Equal(t, -2, summaries[0].Low)
	assert.GreaterOrEqual(t, summaries[0].High, summaries[0].Low)
}

func TestAggregate_UsesLocationForDayBoundaries(t *testing.T) {
	readings := []Reading{
		{Timestamp: time.Date(2024, time.January, 1, 20, 0, 0, 0, time.UTC), TemperatureC: 10, Condition: "Clear"},
		{Timestamp: time.Date(2024, time.January, 1, 23, 0, 0, 0, time.UTC), TemperatureC: 12, Condition: "Clear"},
	}

	t.Run("UTC", func(t *testing.T) {
		assert.Len(t, Aggregate(readings, time.UTC), 1)
	})

	t.Run("PlusThreeHours", func(t *testing.T) {
		summaries := Aggregate(readings, time.FixedZone("", 3*60*60))
		require.Len(t, summaries, 2)
		assert.Equal(t, 10, summaries[0].High)
		assert.Equal(t, 12, summaries[1].High)
	})
}

func TestAggregate_FirstOccurrenceOrder(t *testing.T) {
	readings := []Reading{
		{Timestamp: at(2, 0), TemperatureC: 1, Condition: "Clear"},
		{Timestamp: at(1, 0), TemperatureC: 2, Condition: "Snow"},
		{Timestamp: at(2, 6), TemperatureC: 3, Condition: "Clear"},
	}

	summaries := Aggregate(readings, time.UTC)

	require.Len(t, summaries, 2)
	assert.Equal(t, 3, summaries[0].High)
	assert.Equal(t, IconSunny, summaries[0].Icon)
	assert.Equal(t, IconSnowy, summaries[1].Icon)
}

func TestMostCommon(t *testing.T) {
	assert.Equal(t, "b", mostCommon([]string{"a", "b", "b"}))
	assert.Equal(t, "a", mostCommon([]string{"a", "b"}))
	assert.Equal(t, "", mostCommon(nil))
}

func TestMostCommon_TieGoesToFirstSeenNotFirstToReachCount(t *testing.T) {
	// Rain reaches two first, but Clouds was seen first
	assert.Equal(t, "Clouds", mostCommon([]string{"Clouds", "Rain", "Rain", "Clouds"}))
}

func TestAggregate_ModeTieUsesFirstSeenCondition(t *testing.T) {
	readings := []Reading{
		{Timestamp: at(1, 0), TemperatureC: 5, Condition: "Clouds"},
		{Timestamp: at(1, 3), TemperatureC: 6, Condition: "Rain"},
		{Timestamp: at(1, 6), TemperatureC: 7, Condition: "Rain"},
		{Timestamp: at(1, 9), TemperatureC: 8, Condition: "Clouds"},
	}

	summaries := Aggregate(readings, time.UTC)

	require.Len(t, summaries, 1)
	assert.Equal(t, "Clouds", summaries[0].Condition)
	assert.Equal(t, IconCloudy, summaries[0].Icon)
}
