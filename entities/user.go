package entities

import "time"

type User struct {
	UserID       string `gorm:"primaryKey" json:"user_id"`
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
