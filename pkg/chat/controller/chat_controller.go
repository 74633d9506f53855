package controller

import "github.com/labstack/echo/v4"

type ChatController interface {
	CreateSession(c echo.Context) error
	AddMessage(c echo.Context) error
	Messages(c echo.Context) error
}
