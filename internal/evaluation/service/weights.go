package service

// RoleWeights maps a roster role to per-metric importance multipliers.
// Metrics absent from a role's map carry the baseline weight of 1.
type RoleWeights map[string]map[string]float64

// DefaultRoleWeights returns the cricket role weighting table.
func DefaultRoleWeights() RoleWeights {
	return RoleWeights{
		"batsman": {
			"batting_average": 2.0,
			"strike_rate":     2.0,
			"runs_scored":     2.0,
		},
		"bowler": {
			"bowling_average": 2.0,
			"economy_rate":    2.0,
			"wickets_taken":   2.0,
		},
		"all_rounder": {
			"batting_average": 1.5,
			"bowling_average": 1.5,
		},
	}
}

// WeightFor returns the multiplier for a metric under a role. Unknown roles
// and unlisted metrics weigh 1.
func (w RoleWeights) WeightFor(role, metricName string) float64 {
	metrics, ok := w[role]
	if !ok {
		return 1.0
	}
	weight, ok := metrics[metricName]
	if !ok {
		return 1.0
	}
	return weight
}
