package controller

import "github.com/labstack/echo/v4"

type NewsController interface {
	List(c echo.Context) error
}
