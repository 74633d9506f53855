package controller

import "github.com/labstack/echo/v4"

type AdvisoryController interface {
	CropRecommendations(c echo.Context) error
	FertilizerRecommendation(c echo.Context) error
	PestDetection(c echo.Context) error
}
