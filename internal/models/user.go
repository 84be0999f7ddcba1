package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	FirstName    string    `gorm:"size:100" json:"firstname"`
	LastName     string    `gorm:"size:100" json:"lastname"`
	Role         string    `gorm:"size:20;not null;index" json:"role"` // student | tutor
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
