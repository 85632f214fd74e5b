package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /health_check — liveness probe, no auth.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check always returns 200 while the process is alive.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /health_check [get]
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "All good!"})
}
