package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maxgads/gymmax/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login POST /v1/auth/login
// Exchanges a Firebase ID token for a GymMax JWT, registering on first login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		FirebaseToken string `json:"firebaseToken"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.FirebaseToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "firebaseToken is required"})
	}

	resp, err := h.authService.LoginOrRegister(c.Context(), req.FirebaseToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(resp)
}
