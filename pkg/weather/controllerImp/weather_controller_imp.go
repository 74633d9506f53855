package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agribot/pkg/weather"
)

type WeatherCtrl struct{ client *weather.Client }

func New(client *weather.Client) *WeatherCtrl { return &WeatherCtrl{client} }

// Forecast answers either ?lat=&lon= or ?location=<name>. A failed upstream
// call maps to 502; the page degrades instead of erroring out.
func (h *WeatherCtrl) Forecast(c echo.Context) error {
	ctx := c.Request().Context()

	var lat, lon float64
	var label string
	if loc := c.QueryParam("location"); loc != "" {
		place, err := h.client.Geocode(ctx, loc)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		lat, lon, label = place.Latitude, place.Longitude, place.Name
	} else {
		var err1, err2 error
		lat, err1 = strconv.ParseFloat(c.QueryParam("lat"), 64)
		lon, err2 = strconv.ParseFloat(c.QueryParam("lon"), 64)
		if err1 != nil || err2 != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "location or lat/lon required"})
		}
	}

	f, err := h.client.Forecast(ctx, lat, lon)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"location": label, "forecast": f})
}
