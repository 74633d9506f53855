package repositoryImp

import (
	"gorm.io/gorm"

	"agribot/entities"
	"agribot/pkg/market/repository"
)

type marketRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MarketRepository { return &marketRepo{db} }

func (r *marketRepo) BulkInsert(rows []entities.MarketPrice) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

func (r *marketRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entities.MarketPrice{}).Count(&n).Error
	return n, err
}

func (r *marketRepo) History(crop string) ([]entities.MarketPrice, error) {
	var out []entities.MarketPrice
	if err := r.db.Where("crop = ?", crop).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Latest builds one quote per crop from its last two observations.
func (r *marketRepo) Latest() ([]repository.Quote, error) {
	var crops []string
	if err := r.db.Model(&entities.MarketPrice{}).Distinct("crop").Order("crop ASC").Pluck("crop", &crops).Error; err != nil {
		return nil, err
	}
	quotes := make([]repository.Quote, 0, len(crops))
	for _, crop := range crops {
		var last []entities.MarketPrice
		if err := r.db.Where("crop = ?", crop).Order("date DESC").Limit(2).Find(&last).Error; err != nil {
			return nil, err
		}
		if len(last) == 0 {
			continue
		}
		q := repository.Quote{Crop: crop, Date: last[0].Date, Price: last[0].Price, VolumeTons: last[0].VolumeTons}
		if len(last) == 2 && last[1].Price != 0 {
			q.ChangePct = (last[0].Price - last[1].Price) / last[1].Price * 100
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}
