package repository

import (
	"time"

	"agribot/entities"
)

type IrrigationRepository interface {
	Create(r *entities.IrrigationRecord) error
	ListMonth(userID string, year int, month time.Month) ([]entities.IrrigationRecord, error)
	ListAll(userID string) ([]entities.IrrigationRecord, error)
	PatchStatus(recordID uint, userID, status string) error
}
