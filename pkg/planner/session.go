// Package planner holds the view-model behind the irrigation calendar: the
// displayed month, its fetched records, and the day-selection state machine.
// All mutations run on a single event flow; the sequence counter exists to
// discard fetch responses that land after the user has already moved on.
package planner

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"agribot/entities"
	"agribot/pkg/calendar"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDaySelected
	PhaseAddFormOpen
)

var (
	ErrDayOutOfRange = errors.New("planner: day outside displayed month")
	ErrDayNotEmpty   = errors.New("planner: day already has a schedule")
	ErrFormInvalid   = errors.New("planner: time slot and positive duration required")
	ErrNoAddForm     = errors.New("planner: add form is not open for this day")
)

// AddForm carries the create-on-empty-day input. TimeSlot and a positive
// DurationMinutes are mandatory; the rest default to absent.
type AddForm struct {
	TimeSlot        string
	DurationMinutes int
	AmountMm        *float64
	Method          string
	Notes           string
	Crop            string
}

type Session struct {
	mu      sync.Mutex
	backend Backend
	userID  string

	month   calendar.Month
	records []entities.IrrigationRecord

	phase       Phase
	selectedDay int

	// bumped on every navigation/refresh; responses carrying an older
	// sequence are stale and dropped instead of overwriting newer state
	fetchSeq uint64

	view *calendar.MonthView // memoized projection of (records, month)
	now  func() time.Time
}

func NewSession(backend Backend, userID string, start calendar.Month) *Session {
	return &Session{backend: backend, userID: userID, month: start, now: time.Now}
}

func (s *Session) Month() calendar.Month {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.month
}

func (s *Session) Phase() (Phase, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase, s.selectedDay
}

// View returns the projected grid, rebuilding it only when the underlying
// records or month changed since the last call.
func (s *Session) View() calendar.MonthView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() calendar.MonthView {
	if s.view == nil {
		v := calendar.BuildMonthView(s.records, s.month, s.now())
		s.view = &v
	}
	return *s.view
}

func (s *Session) bucketLocked(day int) []entities.IrrigationRecord {
	v := s.viewLocked()
	if day < 1 || day > len(v.Days) {
		return nil
	}
	return v.Days[day-1].Records
}

// Records returns the bucket for one day of the displayed month.
func (s *Session) Records(day int) []entities.IrrigationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bucketLocked(day)
}

// Refresh fetches the displayed month's records. A failed fetch degrades to
// an empty grid rather than keeping another month's data on screen. If the
// user navigated away while the request was in flight the response is stale
// and ignored.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	year, month := s.month.Year, s.month.Month
	s.mu.Unlock()

	recs, err := s.backend.FetchMonth(ctx, year, month)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		return nil // a newer navigation superseded this fetch
	}
	if err != nil {
		log.Printf("[planner] fetch %04d-%02d failed: %v", year, int(month), err)
		s.records = nil
		s.view = nil
		return err
	}
	s.records = recs
	s.view = nil
	return nil
}

// Navigate moves the displayed month by one, clears the selection (selection
// is month-scoped) and refetches. Any fetch still in flight for the previous
// month is invalidated by the sequence bump inside Refresh.
func (s *Session) Navigate(ctx context.Context, dir calendar.Direction) error {
	s.mu.Lock()
	s.month = calendar.Navigate(s.month, dir)
	s.phase = PhaseIdle
	s.selectedDay = 0
	s.records = nil
	s.view = nil
	s.mu.Unlock()
	return s.Refresh(ctx)
}

// SelectDay implements the single-click flow: selecting a day opens its
// detail view, re-selecting the same day toggles back to idle.
func (s *Session) SelectDay(day int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if day < 1 || day > calendar.DaysInMonth(s.month.Year, s.month.Month) {
		return ErrDayOutOfRange
	}
	if s.phase != PhaseIdle && s.selectedDay == day {
		s.phase = PhaseIdle
		s.selectedDay = 0
		return nil
	}
	s.phase = PhaseDaySelected
	s.selectedDay = day
	return nil
}

// OpenAddForm implements the double-click flow. The add form is reachable
// only from an empty day; a day that already has records stays on its
// read-only detail view.
func (s *Session) OpenAddForm(day int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if day < 1 || day > calendar.DaysInMonth(s.month.Year, s.month.Month) {
		return ErrDayOutOfRange
	}
	if len(s.bucketLocked(day)) > 0 {
		s.phase = PhaseDaySelected
		s.selectedDay = day
		return ErrDayNotEmpty
	}
	s.phase = PhaseAddFormOpen
	s.selectedDay = day
	return nil
}

func (s *Session) CloseForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseIdle
	s.selectedDay = 0
}

// CreateOnEmptyDay persists a new scheduled record for a currently empty day
// and reflects it locally only after the backend confirms. The emptiness
// re-check guards against a concurrent fetch having filled the bucket since
// the form was opened.
func (s *Session) CreateOnEmptyDay(ctx context.Context, day int, form AddForm) (entities.IrrigationRecord, error) {
	s.mu.Lock()
	if s.phase != PhaseAddFormOpen || s.selectedDay != day {
		s.mu.Unlock()
		return entities.IrrigationRecord{}, ErrNoAddForm
	}
	if day < 1 || day > calendar.DaysInMonth(s.month.Year, s.month.Month) {
		s.mu.Unlock()
		return entities.IrrigationRecord{}, ErrDayOutOfRange
	}
	if form.TimeSlot == "" || form.DurationMinutes <= 0 {
		s.mu.Unlock()
		return entities.IrrigationRecord{}, ErrFormInvalid
	}
	if len(s.bucketLocked(day)) > 0 {
		s.mu.Unlock()
		return entities.IrrigationRecord{}, ErrDayNotEmpty
	}
	rec := entities.IrrigationRecord{
		UserID:          s.userID,
		Date:            calendar.DateString(s.month, day),
		TimeSlot:        form.TimeSlot,
		DurationMinutes: form.DurationMinutes,
		AmountMm:        form.AmountMm,
		Method:          form.Method,
		Notes:           form.Notes,
		Crop:            form.Crop,
		Status:          entities.IrrigationScheduled,
	}
	month := s.month
	s.mu.Unlock()

	created, err := s.backend.Create(ctx, rec)
	if err != nil {
		// no optimistic insert survives a failed persist
		log.Printf("[planner] create %s failed: %v", rec.Date, err)
		return entities.IrrigationRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.month == month {
		s.records = append(s.records, created)
		s.view = nil
		s.phase = PhaseDaySelected
		s.selectedDay = day
	}
	return created, nil
}
