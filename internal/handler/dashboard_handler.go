package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maxgads/gymmax/internal/middleware"
	"github.com/maxgads/gymmax/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Home GET /v1/dashboard/home
// One payload for the home screen: next-workout suggestion, trailing weekly
// summary and the current streak.
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	home, err := h.dashboardService.Home(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(home)
}
