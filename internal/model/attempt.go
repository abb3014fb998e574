package model

import (
	"time"

	"skillforge_backend/internal/quiz"
)

// QuizAttempt is one student's submitted answer set for one quiz.
// TotalPoints is snapshotted at submission time and must not track later
// quiz edits. The grading overlay fields are set only by ApplyOverride.
//
// swagger:model QuizAttempt
type QuizAttempt struct {
	UUIDBase
	QuizID          string     `gorm:"index;type:varchar(36);not null" json:"quizId"`
	StudentID       string     `gorm:"index;type:varchar(36);not null" json:"studentId"`
	Answers         StringMap  `gorm:"type:json" json:"answers"`
	Score           int        `gorm:"not null" json:"score"`
	TotalPoints     int        `gorm:"not null" json:"totalPoints"`
	SubmittedAt     time.Time  `json:"submittedAt"`
	OverriddenScore *int       `json:"overriddenScore,omitempty"`
	Feedback        StringMap  `gorm:"type:json" json:"feedback,omitempty"`
	OverallFeedback string     `gorm:"type:text" json:"overallFeedback,omitempty"`
	GradedBy        string     `gorm:"type:varchar(36)" json:"gradedBy,omitempty"`
	GradedAt        *time.Time `json:"gradedAt,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// Grading returns the attempt's grading view for the domain rules.
func (a *QuizAttempt) Grading() quiz.Attempt {
	return quiz.Attempt{
		Score:           a.Score,
		TotalPoints:     a.TotalPoints,
		OverriddenScore: a.OverriddenScore,
		Feedback:        a.Feedback,
		OverallFeedback: a.OverallFeedback,
		GradedBy:        a.GradedBy,
		GradedAt:        a.GradedAt,
	}
}

// SetGrading writes a grading view back onto the row.
func (a *QuizAttempt) SetGrading(g quiz.Attempt) {
	a.OverriddenScore = g.OverriddenScore
	a.Feedback = g.Feedback
	a.OverallFeedback = g.OverallFeedback
	a.GradedBy = g.GradedBy
	a.GradedAt = g.GradedAt
}

// EffectiveScore is the score reporting uses: override when present, the
// automatic score otherwise.
func (a *QuizAttempt) EffectiveScore() int {
	return quiz.EffectiveScore(a.Grading())
}
