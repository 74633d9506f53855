package repository

import "agribot/entities"

type ChatRepository interface {
	CreateSession(s *entities.ChatSession) error
	FindSession(sessionID string) (*entities.ChatSession, error)
	AppendMessage(m *entities.ChatMessage) error
	Messages(sessionID string) ([]entities.ChatMessage, error)
}
