package service

// Metric polarity. Metrics in neither set are scored by percentile.
var (
	higherIsBetter = map[string]bool{
		"batting_average":      true,
		"strike_rate":          true,
		"runs_scored":          true,
		"centuries":            true,
		"half_centuries":       true,
		"boundaries":           true,
		"sixes":                true,
		"wickets_taken":        true,
		"bowling_speed":        true,
		"dot_balls_percentage": true,
		"maidens":              true,
	}

	lowerIsBetter = map[string]bool{
		"economy_rate":    true,
		"bowling_average": true,
		"extras_conceded": true,
	}
)

// defaultRawScore is used when a metric has no usable bounds and no
// percentile data.
const defaultRawScore = 50.0

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// rawScore normalizes a measurement into [0,100]. Metrics with a known
// polarity and a proper range score linearly against their bounds; degenerate
// ranges (max <= min) and unclassified metrics fall back to the percentile,
// and to defaultRawScore when no percentile exists.
func rawScore(metricName string, value, minValue, maxValue float64, percentile *float64) float64 {
	if maxValue > minValue {
		if higherIsBetter[metricName] {
			return clamp((value-minValue)/(maxValue-minValue)*100, 0, 100)
		}
		if lowerIsBetter[metricName] {
			return clamp((maxValue-value)/(maxValue-minValue)*100, 0, 100)
		}
	}

	if percentile != nil {
		return *percentile
	}
	return defaultRawScore
}
