package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	repo "agribot/pkg/market/repository"
)

type MarketCtrl struct{ repo repo.MarketRepository }

func New(repo repo.MarketRepository) *MarketCtrl { return &MarketCtrl{repo} }

func (h *MarketCtrl) Prices(c echo.Context) error {
	out, err := h.repo.Latest()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MarketCtrl) History(c echo.Context) error {
	crop := c.QueryParam("crop")
	if crop == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop required"})
	}
	out, err := h.repo.History(crop)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
