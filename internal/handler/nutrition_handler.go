package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maxgads/gymmax/internal/domain"
	"github.com/maxgads/gymmax/internal/middleware"
	"github.com/maxgads/gymmax/internal/service"
)

type NutritionHandler struct {
	nutritionService *service.NutritionService
}

func NewNutritionHandler(nutritionService *service.NutritionService) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService}
}

// AddEntry POST /v1/nutrition/entries
func (h *NutritionHandler) AddEntry(c *fiber.Ctx) error {
	var req domain.FoodEntry
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	entry, err := h.nutritionService.AddEntry(c.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEntry) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UpdateEntry PUT /v1/nutrition/entries/:id
func (h *NutritionHandler) UpdateEntry(c *fiber.Ctx) error {
	var req domain.FoodEntry
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	req.ID = domain.EntryID(c.Params("id"))

	entry, err := h.nutritionService.UpdateEntry(c.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEntry):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrEntryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(entry)
}

// DeleteEntry DELETE /v1/nutrition/entries/:id
func (h *NutritionHandler) DeleteEntry(c *fiber.Ctx) error {
	err := h.nutritionService.DeleteEntry(c.Context(), middleware.GetUserID(c), domain.EntryID(c.Params("id")))
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// Day GET /v1/nutrition/day?date=YYYY-MM-DD
// Defaults to today when date is absent.
func (h *NutritionHandler) Day(c *fiber.Ctx) error {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
		}
		day = parsed
	}

	log, err := h.nutritionService.Day(c.Context(), middleware.GetUserID(c), day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(log)
}

// CalorieSeries GET /v1/nutrition/series?days=7
func (h *NutritionHandler) CalorieSeries(c *fiber.Ctx) error {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 90 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "days must be between 1 and 90"})
		}
		days = parsed
	}

	series, err := h.nutritionService.CalorieSeries(c.Context(), middleware.GetUserID(c), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(series)
}
