package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agribot/entities"
)

func rec(date, status string) entities.IrrigationRecord {
	return entities.IrrigationRecord{Date: date, Status: status}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February), "2024 is a leap year")
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.March))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
	assert.Equal(t, 28, DaysInMonth(1900, time.February), "century non-leap")
	assert.Equal(t, 29, DaysInMonth(2000, time.February), "400-year leap")
}

func TestFirstWeekdayOffset(t *testing.T) {
	// 2024-03-01 was a Friday, 2023-01-01 a Sunday
	assert.Equal(t, 5, FirstWeekdayOffset(2024, time.March))
	assert.Equal(t, 0, FirstWeekdayOffset(2023, time.January))
	off := FirstWeekdayOffset(2021, time.September)
	assert.GreaterOrEqual(t, off, 0)
	assert.LessOrEqual(t, off, 6)
}

func TestParseDay(t *testing.T) {
	d, ok := ParseDay("2024-03-10", 2024, time.March)
	assert.True(t, ok)
	assert.Equal(t, 10, d)

	_, ok = ParseDay("2024-04-10", 2024, time.March)
	assert.False(t, ok, "wrong month")

	_, ok = ParseDay("2023-03-10", 2024, time.March)
	assert.False(t, ok, "wrong year")

	_, ok = ParseDay("not-a-date", 2024, time.March)
	assert.False(t, ok)

	_, ok = ParseDay("", 2024, time.March)
	assert.False(t, ok)
}

func TestBucketByDay(t *testing.T) {
	records := []entities.IrrigationRecord{
		rec("2024-03-10", "scheduled"),
		rec("2024-03-10", "completed"),
		rec("2024-03-25", "scheduled"),
		rec("2024-04-02", "scheduled"), // outside displayed month
		rec("garbage", "scheduled"),    // malformed, dropped
	}
	buckets := BucketByDay(records, 2024, time.March)

	assert.Len(t, buckets[10], 2, "two records may share one day")
	assert.Len(t, buckets[25], 1)
	assert.Len(t, buckets, 2)
	assert.Empty(t, buckets[2], "april record must not leak into march")
}

func TestDayStatusPrecedence(t *testing.T) {
	m := Month{Year: 2024, Month: time.March}
	today := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)

	// today wins even over a completed record on the same day
	bucket := []entities.IrrigationRecord{rec("2024-03-05", "completed")}
	assert.Equal(t, StatusToday, DayStatus(5, bucket, m, today))

	// done wins over scheduled when a day has both
	bucket = []entities.IrrigationRecord{rec("2024-03-10", "scheduled"), rec("2024-03-10", "completed")}
	assert.Equal(t, StatusDone, DayStatus(10, bucket, m, today))

	bucket = []entities.IrrigationRecord{rec("2024-03-12", "scheduled")}
	assert.Equal(t, StatusScheduled, DayStatus(12, bucket, m, today))

	assert.Equal(t, StatusNormal, DayStatus(11, nil, m, today))

	// unrecognized status values fall back to normal styling
	bucket = []entities.IrrigationRecord{rec("2024-03-20", "postponed")}
	assert.Equal(t, StatusNormal, DayStatus(20, bucket, m, today))

	// "today" only applies when the displayed month matches
	other := Month{Year: 2024, Month: time.April}
	assert.Equal(t, StatusNormal, DayStatus(5, nil, other, today))
}

func TestNavigateYearRollover(t *testing.T) {
	assert.Equal(t, Month{2023, time.December}, Navigate(Month{2024, time.January}, DirPrev))
	assert.Equal(t, Month{2024, time.January}, Navigate(Month{2023, time.December}, DirNext))
	assert.Equal(t, Month{2024, time.February}, Navigate(Month{2024, time.January}, DirNext))

	// a full year of next lands back on the same month
	m := Month{2024, time.July}
	for i := 0; i < 12; i++ {
		m = Navigate(m, DirNext)
	}
	assert.Equal(t, Month{2025, time.July}, m)
}

func TestBuildMonthViewMarch2024(t *testing.T) {
	m := Month{Year: 2024, Month: time.March}
	today := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)
	records := []entities.IrrigationRecord{
		rec("2024-03-10", "scheduled"),
		rec("2024-03-10", "completed"),
	}

	view := BuildMonthView(records, m, today)

	assert.Len(t, view.Days, 31)
	assert.Equal(t, 5, view.Offset)
	assert.Equal(t, StatusDone, view.Days[9].Status, "day 10 has a completed record")
	assert.Equal(t, StatusNormal, view.Days[10].Status, "day 11 is empty")
	assert.Equal(t, StatusToday, view.Days[4].Status)
	for i, cell := range view.Days {
		assert.Equal(t, i+1, cell.Day)
	}
}

func TestBuildMonthViewEmptyRecords(t *testing.T) {
	// fetch failure degrades to an empty record list: every non-today cell
	// renders normal, nothing panics
	m := Month{Year: 2024, Month: time.June}
	today := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	view := BuildMonthView(nil, m, today)
	assert.Len(t, view.Days, 30)
	for _, cell := range view.Days {
		assert.Equal(t, StatusNormal, cell.Status)
		assert.Empty(t, cell.Records)
	}
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2024-03-05", DateString(Month{2024, time.March}, 5))
	assert.Equal(t, "2023-12-31", DateString(Month{2023, time.December}, 31))
	assert.Equal(t, "0999-01-01", DateString(Month{999, time.January}, 1))
}
