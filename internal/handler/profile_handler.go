package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maxgads/gymmax/internal/domain"
	"github.com/maxgads/gymmax/internal/middleware"
	"github.com/maxgads/gymmax/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get GET /v1/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.profileService.Get(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(profile)
}

// Save PUT /v1/profile
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	var req domain.UserProfile
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	profile, err := h.profileService.Save(c.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(profile)
}
