package model

import "encoding/json"

const (
	ActivityCourseCreate   = "course_create"
	ActivityQuizCreate     = "quiz_create"
	ActivityQuizAssigned   = "quiz_assigned"
	ActivityAttemptSubmit  = "quiz_submission"
	ActivityAttemptGraded  = "quiz_graded"
	ActivityUserRegistered = "user_registered"
	ActivityMaterialUpload = "material_upload"
)

// ActivityLog records platform events for the admin audit view and the live
// dashboard feed.
//
// swagger:model ActivityLog
type ActivityLog struct {
	UUIDBase
	Type     string          `gorm:"size:50;index;not null" json:"type"`
	Message  string          `gorm:"type:text" json:"message"`
	Metadata json.RawMessage `gorm:"type:json" json:"metadata,omitempty"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
