package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supplyguard/supplyguard-api/internal/application/usecases"
)

// DashboardHandler serves the consolidated dashboard view.
type DashboardHandler struct {
	dashboardUseCase *usecases.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecases.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUseCase}
}

// GetOverview returns headline stats, the live risk distribution computed
// from the current portfolio, and the most recent alerts in one payload.
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	return c.JSON(h.dashboardUseCase.GetOverview())
}
