package service

import (
	"sort"

	performanceModel "github.com/coachlab/evaluator/internal/performance/model"
)

// percentileRank places one athlete's latest value among every teammate's
// latest value for the same metric. Records must be ordered newest first so
// the first row seen per athlete is their latest. The returned value is
// rank/count*100 with rank being the position of the first occurrence of the
// athlete's value in the ascending sort, so tied athletes share the lowest
// rank among the tie. Nil means no data: either nobody has recorded the
// metric or this athlete has not.
func percentileRank(records []performanceModel.Performance, athleteID string) *float64 {
	latest := make(map[string]float64)
	for _, rec := range records {
		if _, seen := latest[rec.AthleteID]; !seen {
			latest[rec.AthleteID] = rec.Value
		}
	}

	own, ok := latest[athleteID]
	if !ok {
		return nil
	}

	values := make([]float64, 0, len(latest))
	for _, v := range latest {
		values = append(values, v)
	}
	sort.Float64s(values)

	rank := 0
	for i, v := range values {
		if v == own {
			rank = i
			break
		}
	}

	p := float64(rank) / float64(len(values)) * 100
	return &p
}
