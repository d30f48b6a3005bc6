package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/maxgads/gymmax/internal/domain"
	"github.com/maxgads/gymmax/internal/middleware"
	"github.com/maxgads/gymmax/internal/service"
)

// DashboardInvalidator drops the cached home dashboard after session writes.
type DashboardInvalidator interface {
	InvalidateHomeDashboard(ctx context.Context, userID string) error
}

type WorkoutHandler struct {
	workoutService   *service.WorkoutService
	analyticsService *service.AnalyticsService
	invalidator      DashboardInvalidator
}

func NewWorkoutHandler(workoutService *service.WorkoutService, analyticsService *service.AnalyticsService, invalidator DashboardInvalidator) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService:   workoutService,
		analyticsService: analyticsService,
		invalidator:      invalidator,
	}
}

// Log POST /v1/workouts
func (h *WorkoutHandler) Log(c *fiber.Ctx) error {
	var req domain.WorkoutSession
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	userID := middleware.GetUserID(c)
	session, err := h.workoutService.LogSession(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSession) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if h.invalidator != nil {
		_ = h.invalidator.InvalidateHomeDashboard(c.Context(), userID)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// List GET /v1/workouts
func (h *WorkoutHandler) List(c *fiber.Ctx) error {
	sessions, err := h.workoutService.List(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if sessions == nil {
		sessions = []*domain.WorkoutSession{}
	}
	return c.JSON(sessions)
}

// Delete DELETE /v1/workouts/:id
func (h *WorkoutHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	err := h.workoutService.Delete(c.Context(), userID, domain.SessionID(c.Params("id")))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if h.invalidator != nil {
		_ = h.invalidator.InvalidateHomeDashboard(c.Context(), userID)
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// Latest GET /v1/workouts/latest?routineId=
// Most recent session logged for one routine, used to prefill the next log.
func (h *WorkoutHandler) Latest(c *fiber.Ctx) error {
	routineID := c.Query("routineId")
	if routineID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "routineId is required"})
	}

	session, err := h.workoutService.LatestForRoutine(c.Context(), middleware.GetUserID(c), domain.RoutineID(routineID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": domain.ErrSessionNotFound.Error()})
	}
	return c.JSON(session)
}

// Progress GET /v1/workouts/progress
// Max-weight-per-session series for every exercise in the user's history.
func (h *WorkoutHandler) Progress(c *fiber.Ctx) error {
	progress, err := h.analyticsService.ExerciseProgress(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(progress)
}

// ExerciseNames GET /v1/workouts/exercises
// Distinct main exercise names across history, for progress pickers.
func (h *WorkoutHandler) ExerciseNames(c *fiber.Ctx) error {
	names, err := h.workoutService.LoggedExerciseNames(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(names)
}
