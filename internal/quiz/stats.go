package quiz

import "math"

// roundHalfUp matches the rounding the dashboards always used:
// floor(x+0.5), i.e. halves round up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// AverageEffectiveScorePercent converts each attempt's effective score into
// a percentage of its own total and returns the rounded arithmetic mean.
// Attempts with a zero total are excluded rather than dividing by zero; an
// empty input yields 0.
func AverageEffectiveScorePercent(attempts []Attempt) int {
	sum := 0.0
	n := 0
	for _, a := range attempts {
		if a.TotalPoints == 0 {
			continue
		}
		sum += float64(EffectiveScore(a)) / float64(a.TotalPoints) * 100
		n++
	}
	if n == 0 {
		return 0
	}
	return roundHalfUp(sum / float64(n))
}

// MaterialCompletionPercent is the share of a course's materials the student
// has viewed. A course without materials counts as fully complete.
func MaterialCompletionPercent(materialIDs []string, viewed map[string]bool) int {
	if len(materialIDs) == 0 {
		return 100
	}
	n := 0
	for _, id := range materialIDs {
		if viewed[id] {
			n++
		}
	}
	return roundHalfUp(float64(n) / float64(len(materialIDs)) * 100)
}
