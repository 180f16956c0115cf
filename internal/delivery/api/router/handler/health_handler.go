package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root reports that the backend is up.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Nudge backend is running!"})
}

// HealthCheck is the liveness probe.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
