package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/maxgads/gymmax/internal/domain"
	"github.com/maxgads/gymmax/internal/middleware"
	"github.com/maxgads/gymmax/internal/service"
)

type RecipeHandler struct {
	recipeService *service.RecipeService
}

func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// Generate POST /v1/recipes/generate
func (h *RecipeHandler) Generate(c *fiber.Ctx) error {
	var req service.RecipePreferences
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	recipe, err := h.recipeService.Generate(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyIngredients) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(recipe)
}

// Save POST /v1/recipes
func (h *RecipeHandler) Save(c *fiber.Ctx) error {
	var req domain.Recipe
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	saved, err := h.recipeService.Save(c.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// List GET /v1/recipes
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	recipes, err := h.recipeService.List(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if recipes == nil {
		recipes = []*domain.SavedRecipe{}
	}
	return c.JSON(recipes)
}

// Delete DELETE /v1/recipes/:id
func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	err := h.recipeService.Delete(c.Context(), middleware.GetUserID(c), domain.RecipeID(c.Params("id")))
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// AnalyzeMeal POST /v1/meals/analyze (multipart "image")
func (h *RecipeHandler) AnalyzeMeal(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
	}
	data, err := readMultipartFile(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read image"})
	}

	analysis, err := h.recipeService.AnalyzeMealPhoto(c.Context(), middleware.GetUserID(c), data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(analysis)
}
