package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorMessage struct {
	Error string `json:"error"`
}

type successMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (a *App) er(c echo.Context, statusCode int, message ...string) error {
	msg := http.StatusText(statusCode)
	if len(message) > 0 {
		msg = message[0]
	}
	return c.JSON(statusCode, &errorMessage{
		Error: msg,
	})
}

func (a *App) ok(c echo.Context, message ...string) error {
	res := successMessage{Success: true}
	if len(message) > 0 {
		res.Message = message[0]
	}
	return c.JSON(http.StatusOK, &res)
}
