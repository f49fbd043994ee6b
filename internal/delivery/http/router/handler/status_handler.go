package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root answers the bare path so load balancers and humans get a signal.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Storefront API is running")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
