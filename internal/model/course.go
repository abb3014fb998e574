package model

import "skillforge_backend/internal/quiz"

type MaterialKind string

const (
	MaterialVideo MaterialKind = "video"
	MaterialPDF   MaterialKind = "pdf"
	MaterialLink  MaterialKind = "link"
)

// CourseMaterial is one entry of a course's material list. URL points at the
// storage provider for uploaded files, or an external site for links.
type CourseMaterial struct {
	ID       string       `json:"id"`
	Kind     MaterialKind `json:"type"`
	Title    string       `json:"title"`
	URL      string       `json:"url"`
	Size     int64        `json:"sizeBytes,omitempty"`
	Duration float64      `json:"durationSeconds,omitempty"` // videos only
}

// swagger:model Course
type Course struct {
	UUIDBase
	Title           string          `gorm:"size:255;not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	Difficulty      quiz.Difficulty `gorm:"size:20;default:'Beginner'" json:"difficulty"`
	MentorID        string          `gorm:"index;type:varchar(36)" json:"mentorId"`
	InstructorName  string          `gorm:"size:100" json:"instructorName"`
	InstitutionName string          `gorm:"size:100" json:"institutionName"`
	Topics          StringList      `gorm:"type:json" json:"topics"`
	Materials       MaterialList    `gorm:"type:json" json:"materials"`
}

func (Course) TableName() string {
	return "courses"
}

// MaterialIDs returns the material ids in list order, as consumed by the
// completion statistics.
func (c *Course) MaterialIDs() []string {
	ids := make([]string, len(c.Materials))
	for i, m := range c.Materials {
		ids[i] = m.ID
	}
	return ids
}
