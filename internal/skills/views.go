package skills

import "math"

// RadarPoint is one axis of the proficiency radar: a skill and its current
// score.
type RadarPoint struct {
	Name  string
	Score float64
}

// TrendPoint pairs a skill's current score with a synthetic previous value.
// Previous is max(0, current-1): a placeholder derived from the current
// score, not a historical lookup. The data model carries attempt timestamps
// but no per-attempt scores, so there is nothing real to look up.
type TrendPoint struct {
	Name     string
	Previous float64
	Current  float64
}

// BuildRadar projects a snapshot into radar points, one per record in
// snapshot order. An empty snapshot yields an empty slice.
func BuildRadar(snapshot []Record) []RadarPoint {
	points := make([]RadarPoint, 0, len(snapshot))
	for _, r := range snapshot {
		points = append(points, RadarPoint{Name: r.Name, Score: r.Score})
	}
	return points
}

// BuildTrend projects a snapshot into trend points, one per record in
// snapshot order, with both values rounded to two decimals.
func BuildTrend(snapshot []Record) []TrendPoint {
	points := make([]TrendPoint, 0, len(snapshot))
	for _, r := range snapshot {
		current := round2(r.Score)
		points = append(points, TrendPoint{
			Name:     r.Name,
			Previous: round2(math.Max(0, current-1)),
			Current:  current,
		})
	}
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
