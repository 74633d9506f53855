package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	repo "agribot/pkg/news/repository"
)

type NewsCtrl struct{ repo repo.NewsRepository }

func New(repo repo.NewsRepository) *NewsCtrl { return &NewsCtrl{repo} }

func (h *NewsCtrl) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.repo.List(c.QueryParam("category"), c.QueryParam("q"), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
