package repositoryImp

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"agribot/entities"
	"agribot/pkg/irrigation/repository"
)

type irrigationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.IrrigationRepository { return &irrigationRepo{db} }

func (r *irrigationRepo) Create(rec *entities.IrrigationRecord) error {
	return r.db.Create(rec).Error
}

// ListMonth scopes by string prefix on the date column. Dates are stored as
// zero-padded YYYY-MM-DD, so the prefix match is exact month scoping.
func (r *irrigationRepo) ListMonth(userID string, year int, month time.Month) ([]entities.IrrigationRecord, error) {
	var out []entities.IrrigationRecord
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	if err := r.db.Where("user_id = ? AND date LIKE ?", userID, prefix+"%").
		Order("date ASC, record_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *irrigationRepo) ListAll(userID string) ([]entities.IrrigationRecord, error) {
	var out []entities.IrrigationRecord
	if err := r.db.Where("user_id = ?", userID).Order("date ASC, record_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *irrigationRepo) PatchStatus(recordID uint, userID, status string) error {
	res := r.db.Model(&entities.IrrigationRecord{}).
		Where("record_id = ? AND user_id = ?", recordID, userID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
