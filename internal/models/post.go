package models

import "time"

// StudentPost is a student's request for a tutor. ScheduleDays and
// TimeOfDay are free text filled in by the poster; no format is enforced
// ("Mon,Wed", "ทุกวันเสาร์", "20/08/2568" all occur in production data).
type StudentPost struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Subject      string    `gorm:"size:255;not null" json:"subject"`
	Description  string    `gorm:"type:text" json:"description"`
	ScheduleDays string    `gorm:"size:255" json:"schedule_days"`
	TimeOfDay    string    `gorm:"size:100" json:"time_of_day"` // "HH:MM" or "HH:MM - HH:MM"
	Budget       int       `json:"budget"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (StudentPost) TableName() string {
	return "student_posts"
}

// TutorPost is a tutor's class offering that students may join.
type TutorPost struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Subject      string    `gorm:"size:255;not null" json:"subject"`
	Description  string    `gorm:"type:text" json:"description"`
	ScheduleDays string    `gorm:"size:255" json:"schedule_days"`
	TimeOfDay    string    `gorm:"size:100" json:"time_of_day"`
	Price        int       `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (TutorPost) TableName() string {
	return "tutor_posts"
}
