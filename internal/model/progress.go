package model

import "time"

// MaterialProgress marks one course material as viewed by one student.
// Feeds the completion percentage on the student dashboard.
//
// swagger:model MaterialProgress
type MaterialProgress struct {
	UUIDBase
	StudentID  string    `gorm:"uniqueIndex:idx_student_material;type:varchar(36);not null" json:"studentId"`
	CourseID   string    `gorm:"index;type:varchar(36);not null" json:"courseId"`
	MaterialID string    `gorm:"uniqueIndex:idx_student_material;type:varchar(100);not null" json:"materialId"`
	ViewedAt   time.Time `json:"viewedAt"`
}

func (MaterialProgress) TableName() string {
	return "material_progress"
}
