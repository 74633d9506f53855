package repositoryImp

import (
	"gorm.io/gorm"

	"agribot/entities"
	"agribot/pkg/chat/repository"
)

type chatRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChatRepository { return &chatRepo{db} }

func (r *chatRepo) CreateSession(s *entities.ChatSession) error { return r.db.Create(s).Error }

func (r *chatRepo) FindSession(sessionID string) (*entities.ChatSession, error) {
	var s entities.ChatSession
	if err := r.db.Where("session_id = ?", sessionID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *chatRepo) AppendMessage(m *entities.ChatMessage) error { return r.db.Create(m).Error }

func (r *chatRepo) Messages(sessionID string) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	if err := r.db.Where("session_id = ?", sessionID).Order("message_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
