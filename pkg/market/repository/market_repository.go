package repository

import "agribot/entities"

// Quote is the dashboard row: latest price per crop plus the change against
// the previous observation.
type Quote struct {
	Crop       string   `json:"crop"`
	Date       string   `json:"date"`
	Price      float64  `json:"price"`
	ChangePct  float64  `json:"change_pct"`
	VolumeTons *float64 `json:"volume_tons"`
}

type MarketRepository interface {
	BulkInsert(rows []entities.MarketPrice) error
	Count() (int64, error)
	History(crop string) ([]entities.MarketPrice, error)
	Latest() ([]Quote, error)
}
