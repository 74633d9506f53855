package entities

import "time"

// IrrigationRecord is one planned or completed watering event. Date is kept
// as a plain YYYY-MM-DD calendar string: grid placement must never depend on
// the viewer's timezone, so it is not stored as an instant.
type IrrigationRecord struct {
	RecordID        uint     `gorm:"primaryKey" json:"record_id"`
	UserID          string   `gorm:"index" json:"userid"`
	Date            string   `gorm:"index" json:"date"` // YYYY-MM-DD
	TimeSlot        string   `json:"time_slot"`         // e.g. "6:00-8:00"
	DurationMinutes int      `json:"duration_minutes"`
	AmountMm        *float64 `json:"amount_mm"`
	Method          string   `json:"method"`
	Notes           string   `json:"notes"`
	Crop            string   `json:"crop"`
	Status          string   `json:"status"` // scheduled|completed
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const (
	IrrigationScheduled = "scheduled"
	IrrigationCompleted = "completed"
)
