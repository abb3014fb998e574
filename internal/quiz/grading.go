package quiz

import "time"

// Attempt is the grading view of a stored quiz attempt: the automatic score,
// the total-points snapshot captured at submission time, and the optional
// instructor overlay. TotalPoints must keep the submission-time value even
// if the quiz is edited afterwards.
type Attempt struct {
	Score           int
	TotalPoints     int
	OverriddenScore *int
	Feedback        map[string]string
	OverallFeedback string
	GradedBy        string
	GradedAt        *time.Time
}

// Override is an instructor's manual grade for an attempt.
type Override struct {
	Score           int
	Feedback        map[string]string
	OverallFeedback string
	GradedBy        string
}

// ApplyOverride sets the grading overlay on an attempt. The override score
// must lie in [0, TotalPoints], both bounds inclusive. The automatic Score
// is never recomputed; re-invoking replaces the previous overlay entirely
// (last write wins, no history).
func ApplyOverride(a *Attempt, o Override, now time.Time) error {
	if o.Score < 0 || o.Score > a.TotalPoints {
		return &ValidationError{Field: "overriddenScore", Reason: "override must be between 0 and the attempt's total points"}
	}
	score := o.Score
	a.OverriddenScore = &score
	a.Feedback = o.Feedback
	a.OverallFeedback = o.OverallFeedback
	a.GradedBy = o.GradedBy
	a.GradedAt = &now
	return nil
}

// EffectiveScore is the score every report uses: the override when present,
// the automatic score otherwise.
func EffectiveScore(a Attempt) int {
	if a.OverriddenScore != nil {
		return *a.OverriddenScore
	}
	return a.Score
}
