package model

import "time"

// QuizAssignment grants one student visibility of (and the obligation to
// take) one quiz. Without an assignment record the student cannot submit an
// attempt.
//
// swagger:model QuizAssignment
type QuizAssignment struct {
	UUIDBase
	QuizID     string    `gorm:"uniqueIndex:idx_quiz_student;type:varchar(36);not null" json:"quizId"`
	StudentID  string    `gorm:"uniqueIndex:idx_quiz_student;type:varchar(36);not null" json:"studentId"`
	AssignedAt time.Time `json:"assignedAt"`
}

func (QuizAssignment) TableName() string {
	return "quiz_assignments"
}
