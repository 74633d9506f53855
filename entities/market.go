package entities

import "time"

type MarketPrice struct {
	PriceID    uint     `gorm:"primaryKey" json:"price_id"`
	Crop       string   `gorm:"index" json:"crop"`
	Date       string   `gorm:"index" json:"date"` // YYYY-MM-DD
	Price      float64  `json:"price"`
	VolumeTons *float64 `json:"volume_tons"`
	CreatedAt  time.Time
}
