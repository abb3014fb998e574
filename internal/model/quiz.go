package model

import "skillforge_backend/internal/quiz"

// swagger:model Quiz
type Quiz struct {
	UUIDBase
	CourseID   string          `gorm:"index;type:varchar(36);not null" json:"courseId"`
	Title      string          `gorm:"size:255;not null" json:"title"`
	Questions  QuestionList    `gorm:"type:json" json:"questions"`
	Difficulty quiz.Difficulty `gorm:"size:20" json:"difficulty"`
	CreatedBy  string          `gorm:"index;type:varchar(36)" json:"createdBy"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// TotalPoints is computed from the question set, never stored.
func (q *Quiz) TotalPoints() int {
	return quiz.TotalPoints(q.Questions)
}
