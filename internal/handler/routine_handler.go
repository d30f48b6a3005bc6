package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/maxgads/gymmax/internal/domain"
	"github.com/maxgads/gymmax/internal/middleware"
	"github.com/maxgads/gymmax/internal/service"
)

type RoutineHandler struct {
	routineService *service.RoutineService
	importer       *service.RoutineImporter
}

func NewRoutineHandler(routineService *service.RoutineService, importer *service.RoutineImporter) *RoutineHandler {
	return &RoutineHandler{
		routineService: routineService,
		importer:       importer,
	}
}

// List GET /v1/routines
func (h *RoutineHandler) List(c *fiber.Ctx) error {
	routines, err := h.routineService.List(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if routines == nil {
		routines = []*domain.Routine{}
	}
	return c.JSON(routines)
}

// Get GET /v1/routines/:id
func (h *RoutineHandler) Get(c *fiber.Ctx) error {
	routine, err := h.routineService.Get(c.Context(), middleware.GetUserID(c), domain.RoutineID(c.Params("id")))
	if err != nil {
		if errors.Is(err, domain.ErrRoutineNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(routine)
}

// Create POST /v1/routines
func (h *RoutineHandler) Create(c *fiber.Ctx) error {
	var req domain.Routine
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	routine, err := h.routineService.Create(c.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRoutine) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(routine)
}

// Update PUT /v1/routines/:id
func (h *RoutineHandler) Update(c *fiber.Ctx) error {
	var req domain.Routine
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	req.ID = domain.RoutineID(c.Params("id"))

	routine, err := h.routineService.Update(c.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRoutine):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrRoutineNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(routine)
}

// Delete DELETE /v1/routines/:id
func (h *RoutineHandler) Delete(c *fiber.Ctx) error {
	err := h.routineService.Delete(c.Context(), middleware.GetUserID(c), domain.RoutineID(c.Params("id")))
	if err != nil {
		if errors.Is(err, domain.ErrRoutineNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// Import POST /v1/routines/import
// Accepts either pasted plan text or a plan photo (multipart "image").
func (h *RoutineHandler) Import(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	if file, err := c.FormFile("image"); err == nil {
		data, err := readMultipartFile(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read image"})
		}
		routine, err := h.importer.FromImage(c.Context(), userID, data)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(routine)
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	routine, err := h.importer.FromText(c.Context(), userID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyImport) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(routine)
}
