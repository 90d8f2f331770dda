package handler

import (
	"net/http"

	"farmgate/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Test is the public probe route the reference front end polls.
func Test(c echo.Context) error {
	return response.Message(c, http.StatusOK, "API working Fine!")
}
