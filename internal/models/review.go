package models

import "time"

// Review is a student's rating of a finished class. Its existence
// permanently suppresses further review-request notifications for the
// (student, post, post type) pair.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"not null;index:idx_review_lookup,priority:1" json:"student_id"`
	PostID    uint      `gorm:"not null;index:idx_review_lookup,priority:2" json:"post_id"`
	PostType  string    `gorm:"size:20;not null;index:idx_review_lookup,priority:3" json:"post_type"` // student_post | tutor_post
	Rating    int       `json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	Student User `gorm:"foreignKey:StudentID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
