// Package calendar projects a flat list of dated irrigation records onto a
// month grid. It is pure derivation: nothing here is persisted, a MonthView
// is always rebuilt from the authoritative record list.
package calendar

import (
	"fmt"
	"time"

	"agribot/entities"
)

type Direction int

const (
	DirPrev Direction = iota
	DirNext
)

// Status classifies one calendar cell for styling.
type Status string

const (
	StatusToday     Status = "today"
	StatusDone      Status = "done"
	StatusScheduled Status = "scheduled"
	StatusNormal    Status = "normal"
)

// Month identifies the displayed month.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func (m Month) String() string { return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)) }

type DayCell struct {
	Day     int                         `json:"day"`
	Status  Status                      `json:"status"`
	Records []entities.IrrigationRecord `json:"records,omitempty"`
}

// MonthView is the render-ready grid: one cell per day of the month plus the
// weekday offset of day 1 used to left-pad the first row (Sunday-first).
type MonthView struct {
	Month  Month     `json:"month"`
	Offset int       `json:"offset"`
	Days   []DayCell `json:"days"`
}

func DaysInMonth(year int, month time.Month) int {
	// day 0 of the following month rolls back to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset returns the weekday index of day 1, 0 = Sunday.
func FirstWeekdayOffset(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// ParseDay maps a YYYY-MM-DD string onto a day of the given month. The string
// is parsed as a plain calendar date, never as an instant, so the same string
// yields the same day regardless of the viewer's timezone. Returns false for
// malformed strings and for dates outside the month.
func ParseDay(date string, year int, month time.Month) (int, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	if t.Year() != year || t.Month() != month {
		return 0, false
	}
	return t.Day(), true
}

// BucketByDay groups records by day of the given month. A day may hold any
// number of records. Out-of-month and malformed dates are dropped silently:
// a bad row from the backend must not take the grid down.
func BucketByDay(records []entities.IrrigationRecord, year int, month time.Month) map[int][]entities.IrrigationRecord {
	buckets := map[int][]entities.IrrigationRecord{}
	for _, r := range records {
		d, ok := ParseDay(r.Date, year, month)
		if !ok {
			continue
		}
		buckets[d] = append(buckets[d], r)
	}
	return buckets
}

// DayStatus classifies one day. Precedence is today > done > scheduled >
// normal: today styling wins even when today has a completed record, and a
// day holding both a completed and a pending record counts as accomplished.
func DayStatus(day int, bucket []entities.IrrigationRecord, m Month, today time.Time) Status {
	if today.Day() == day && today.Month() == m.Month && today.Year() == m.Year {
		return StatusToday
	}
	for _, r := range bucket {
		if r.Status == entities.IrrigationCompleted {
			return StatusDone
		}
	}
	for _, r := range bucket {
		if r.Status == entities.IrrigationScheduled {
			return StatusScheduled
		}
	}
	return StatusNormal
}

// Navigate moves the displayed month by exactly one calendar month, rolling
// over year boundaries. Anchoring on day 1 keeps AddDate from skipping months.
func Navigate(m Month, dir Direction) Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	if dir == DirPrev {
		t = t.AddDate(0, -1, 0)
	} else {
		t = t.AddDate(0, 1, 0)
	}
	return Month{Year: t.Year(), Month: t.Month()}
}

func BuildMonthView(records []entities.IrrigationRecord, m Month, today time.Time) MonthView {
	buckets := BucketByDay(records, m.Year, m.Month)
	n := DaysInMonth(m.Year, m.Month)
	days := make([]DayCell, 0, n)
	for d := 1; d <= n; d++ {
		days = append(days, DayCell{Day: d, Status: DayStatus(d, buckets[d], m, today), Records: buckets[d]})
	}
	return MonthView{Month: m, Offset: FirstWeekdayOffset(m.Year, m.Month), Days: days}
}

// DateString renders the displayed month plus a day number as the zero-padded
// YYYY-MM-DD string the backend expects. Built from the displayed fields, not
// from a timestamp, so serialization cannot shift across midnight.
func DateString(m Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, int(m.Month), day)
}
