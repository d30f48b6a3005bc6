package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/maxgads/gymmax/internal/service"
)

type AssistantHandler struct {
	assistantService *service.AssistantService
}

func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
	}
}

// Chat POST /v1/assistant/chat
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var req struct {
		Message string                `json:"message"`
		History []service.ChatMessage `json:"history"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	reply, err := h.assistantService.Advise(c.Context(), req.History, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuestion) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"reply": reply})
}
