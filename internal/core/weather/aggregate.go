package weather

import (
	"math"
	"time"
)

const forecastDays = 5

type dailyBucket struct {
	date       time.Time
	temps      []float64
	conditions []string
	icons      []string
}

// Aggregate groups forecast readings by calendar day in loc and summarizes the first
// five days in order of first appearance. A nil loc means UTC.
func Aggregate(readings []Reading, loc *time.Location) []DailySummary {
	if loc == nil {
		loc = time.UTC
	}

	buckets := make([]*dailyBucket, 0, forecastDays)
	index := make(map[string]*dailyBucket)

	for _, r := range readings {
		local := r.Timestamp.In(loc)
		key := local.Format(time.DateOnly)

		bucket, ok := index[key]
		if !ok {
			bucket = &dailyBucket{date: local}
			index[key] = bucket
			buckets = append(buckets, bucket)
		}

		bucket.temps = append(bucket.temps, r.TemperatureC)
		bucket.conditions = append(bucket.conditions, r.Condition)
		bucket.icons = append(bucket.icons, string(Classify(r.Condition)))
	}

	if len(buckets) > forecastDays {
		buckets = buckets[:forecastDays]
	}

	summaries := make([]DailySummary, 0, len(buckets))
	for i, bucket := range buckets {
		high, low := bucket.temps[0], bucket.temps[0]
		for _, t := range bucket.temps[1:] {
			high = math.Max(high, t)
			low = math.Min(low, t)
		}

		summaries = append(summaries, DailySummary{
			Day:       dayLabel(i, bucket.date),
			High:      roundInt(high),
			Low:       roundInt(low),
			Condition: mostCommon(bucket.conditions),
			Icon:      IconCategory(mostCommon(bucket.icons)),
		})
	}

	return summaries
}

// dayLabel returns "Today" and "Tomorrow" for the first two positions and the
// English weekday name after that.
func dayLabel(position int, date time.Time) string {
	switch position {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return date.Weekday().String()
	}
}

// mostCommon returns the most frequent value. Ties go to the value seen first
// in input order.
func mostCommon(values []string) string {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	var best string
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

// roundInt rounds half up, so -2.5 becomes -2
func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}
