package models

import "time"

// JoinApproval records a student asking to join a tutor's class.
type JoinApproval struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TutorPostID uint      `gorm:"not null;index" json:"tutor_post_id"`
	StudentID   uint      `gorm:"not null;index" json:"student_id"`
	Status      string    `gorm:"size:20;not null;default:pending" json:"status"` // pending | approved | rejected
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	TutorPost TutorPost `gorm:"foreignKey:TutorPostID" json:"-"`
	Student   User      `gorm:"foreignKey:StudentID" json:"-"`
}

func (JoinApproval) TableName() string {
	return "join_approvals"
}

// OfferApproval records a tutor offering to teach a student's request.
// Mirror image of JoinApproval.
type OfferApproval struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	StudentPostID uint      `gorm:"not null;index" json:"student_post_id"`
	TutorID       uint      `gorm:"not null;index" json:"tutor_id"`
	Status        string    `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	StudentPost StudentPost `gorm:"foreignKey:StudentPostID" json:"-"`
	Tutor       User        `gorm:"foreignKey:TutorID" json:"-"`
}

func (OfferApproval) TableName() string {
	return "offer_approvals"
}
