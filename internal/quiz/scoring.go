package quiz

// ScoreResult is the outcome of automatically scoring one attempt.
type ScoreResult struct {
	Score       int            `json:"score"`
	TotalPoints int            `json:"totalPoints"`
	PerQuestion map[string]int `json:"perQuestion"`
}

// ScoreAttempt computes an attempt's automatic score from submitted answers.
// It never fails: missing answers score zero and keys that match no question
// are ignored, so a displayable result always comes back.
func ScoreAttempt(questions []Question, answers map[string]string) ScoreResult {
	res := ScoreResult{
		TotalPoints: TotalPoints(questions),
		PerQuestion: make(map[string]int, len(questions)),
	}
	for _, q := range questions {
		awarded := 0
		if answerMatches(q, answers[q.ID]) {
			awarded = q.Points
		}
		res.PerQuestion[q.ID] = awarded
		res.Score += awarded
	}
	return res
}
