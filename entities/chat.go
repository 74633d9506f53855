package entities

import "time"

type ChatSession struct {
	SessionID string `gorm:"primaryKey" json:"session_id"`
	UserID    string `gorm:"index" json:"user_id"`
	Title     string `json:"title"`
	CreatedAt time.Time
}

type ChatMessage struct {
	MessageID uint   `gorm:"primaryKey" json:"message_id"`
	SessionID string `gorm:"index" json:"session_id"`
	Role      string `json:"role"` // user|assistant
	Content   string `json:"content"`
	FileURL   string `json:"file_url,omitempty"`
	CreatedAt time.Time
}
