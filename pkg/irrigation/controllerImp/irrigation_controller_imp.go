package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agribot/entities"
	"agribot/pkg/calendar"
	repo "agribot/pkg/irrigation/repository"
)

type IrrigationCtrl struct {
	repo repo.IrrigationRepository
	now  func() time.Time
}

func New(repo repo.IrrigationRepository) *IrrigationCtrl {
	return &IrrigationCtrl{repo: repo, now: time.Now}
}

func monthYearParams(c echo.Context) (int, time.Month, bool) {
	m, err1 := strconv.Atoi(c.QueryParam("month"))
	y, err2 := strconv.Atoi(c.QueryParam("year"))
	if err1 != nil || err2 != nil || m < 1 || m > 12 || y < 1 {
		return 0, 0, false
	}
	return y, time.Month(m), true
}

func (h *IrrigationCtrl) ListMonth(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	y, m, ok := monthYearParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "month and year required"})
	}
	out, err := h.repo.ListMonth(uid, y, m)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IrrigationCtrl) ListAll(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	out, err := h.repo.ListAll(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type createReq struct {
	UserID          string   `json:"userid"`
	Date            string   `json:"date"`
	TimeSlot        string   `json:"time_slot"`
	DurationMinutes int      `json:"duration_minutes"`
	AmountMm        *float64 `json:"amount_mm"`
	Method          string   `json:"method"`
	Notes           string   `json:"notes"`
	Crop            string   `json:"crop"`
	Status          string   `json:"status"`
}

func (h *IrrigationCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	// authenticated uid wins over the body field when both are present
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		uid = req.UserID
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
	}
	if req.TimeSlot == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "time_slot required"})
	}
	if req.DurationMinutes <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "duration_minutes must be positive"})
	}
	if req.Status == "" {
		req.Status = entities.IrrigationScheduled
	}
	rec := &entities.IrrigationRecord{
		UserID:          uid,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		DurationMinutes: req.DurationMinutes,
		AmountMm:        req.AmountMm,
		Method:          req.Method,
		Notes:           req.Notes,
		Crop:            req.Crop,
		Status:          req.Status,
	}
	if err := h.repo.Create(rec); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// Calendar serves the projected month grid so thin clients don't have to
// rebuild it themselves.
func (h *IrrigationCtrl) Calendar(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	y, m, ok := monthYearParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "month and year required"})
	}
	recs, err := h.repo.ListMonth(uid, y, m)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	view := calendar.BuildMonthView(recs, calendar.Month{Year: y, Month: m}, h.now())
	return c.JSON(http.StatusOK, view)
}

func (h *IrrigationCtrl) Patch(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.Status == "" {
		body.Status = entities.IrrigationCompleted
	}
	if err := h.repo.PatchStatus(uint(id), uid, body.Status); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
