package model

// MetricDef describes one entry of a metric preset.
type MetricDef struct {
	Name        string
	Description string
	Unit        string
	MinValue    float64
	MaxValue    float64
}

// CricketMetricDefs returns the cricket metric preset a coach can apply to a
// team in one call instead of defining each metric by hand.
func CricketMetricDefs() []MetricDef {
	return []MetricDef{
		// Batting
		{Name: "batting_average", Description: "Average runs scored per dismissal", Unit: "runs", MinValue: 0, MaxValue: 100},
		{Name: "strike_rate", Description: "Runs scored per 100 balls faced", Unit: "", MinValue: 0, MaxValue: 200},
		{Name: "runs_scored", Description: "Total runs scored in match/session", Unit: "runs", MinValue: 0, MaxValue: 500},
		{Name: "boundaries", Description: "Fours hit", Unit: "count", MinValue: 0, MaxValue: 50},
		{Name: "sixes", Description: "Sixes hit", Unit: "count", MinValue: 0, MaxValue: 30},
		{Name: "centuries", Description: "Innings of 100 or more runs", Unit: "count", MinValue: 0, MaxValue: 10},
		{Name: "half_centuries", Description: "Innings of 50 to 99 runs", Unit: "count", MinValue: 0, MaxValue: 20},
		// Bowling
		{Name: "bowling_average", Description: "Runs conceded per wicket taken", Unit: "", MinValue: 0, MaxValue: 100},
		{Name: "economy_rate", Description: "Runs conceded per over", Unit: "runs/over", MinValue: 0, MaxValue: 15},
		{Name: "bowling_speed", Description: "Speed of delivery", Unit: "km/h", MinValue: 80, MaxValue: 160},
		{Name: "wickets_taken", Description: "Number of wickets taken", Unit: "count", MinValue: 0, MaxValue: 10},
		{Name: "dot_balls_percentage", Description: "Share of deliveries conceding no runs", Unit: "%", MinValue: 0, MaxValue: 100},
		{Name: "maidens", Description: "Overs bowled without conceding a run", Unit: "count", MinValue: 0, MaxValue: 10},
		{Name: "extras_conceded", Description: "Extra runs conceded", Unit: "runs", MinValue: 0, MaxValue: 30},
		// Fielding
		{Name: "catches_taken", Description: "Catches taken in the field", Unit: "count", MinValue: 0, MaxValue: 5},
		{Name: "run_outs", Description: "Run outs effected", Unit: "count", MinValue: 0, MaxValue: 3},
		{Name: "fielding_accuracy", Description: "Share of clean fielding actions", Unit: "%", MinValue: 0, MaxValue: 100},
	}
}
