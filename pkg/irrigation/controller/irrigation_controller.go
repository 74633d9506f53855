package controller

import "github.com/labstack/echo/v4"

type IrrigationController interface {
	ListMonth(c echo.Context) error
	ListAll(c echo.Context) error
	Create(c echo.Context) error
	Calendar(c echo.Context) error
	Patch(c echo.Context) error
}
