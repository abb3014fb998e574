package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Mentor  UserRole = "mentor"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	UUIDBase
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('student','mentor','admin');default:'student'" json:"role"`
	DOB       string    `gorm:"size:20" json:"dob,omitempty"`
	Education string    `gorm:"size:100" json:"education,omitempty"`
	School    string    `gorm:"size:100" json:"school,omitempty"`
	State     string    `gorm:"size:100" json:"state,omitempty"`
	Contact   string    `gorm:"size:50" json:"contact,omitempty"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
