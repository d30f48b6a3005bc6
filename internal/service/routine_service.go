package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maxgads/gymmax/internal/domain"
)

var ErrInvalidRoutine = errors.New("routine must have a name")

type RoutineService struct {
	routineRepo domain.RoutineRepository
}

func NewRoutineService(routineRepo domain.RoutineRepository) *RoutineService {
	return &RoutineService{
		routineRepo: routineRepo,
	}
}

// Create validates, normalizes and persists a new routine for the user.
func (s *RoutineService) Create(ctx context.Context, userID string, routine *domain.Routine) (*domain.Routine, error) {
	if routine.Name == "" {
		return nil, ErrInvalidRoutine
	}
	routine.ID = ""
	routine.UserID = userID
	normalizeDays(routine)

	if err := s.routineRepo.Create(ctx, routine); err != nil {
		return nil, fmt.Errorf("failed to create routine: %w", err)
	}
	return routine, nil
}

func (s *RoutineService) Get(ctx context.Context, userID string, id domain.RoutineID) (*domain.Routine, error) {
	return s.routineRepo.GetByID(ctx, userID, id)
}

func (s *RoutineService) List(ctx context.Context, userID string) ([]*domain.Routine, error) {
	return s.routineRepo.ListByUser(ctx, userID)
}

// Update persists edits to a routine the user owns. Days keep their ids so
// logged history stays linked; new days and exercises get fresh ones.
func (s *RoutineService) Update(ctx context.Context, userID string, routine *domain.Routine) (*domain.Routine, error) {
	if routine.Name == "" {
		return nil, ErrInvalidRoutine
	}
	routine.UserID = userID
	normalizeDays(routine)

	if err := s.routineRepo.Update(ctx, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

func (s *RoutineService) Delete(ctx context.Context, userID string, id domain.RoutineID) error {
	return s.routineRepo.Delete(ctx, userID, id)
}

// Import persists a routine parsed elsewhere (AI import, file upload). Data
// may arrive with holes: missing ids, missing orders, unnamed days. Create's
// normalization fills all of that in.
func (s *RoutineService) Import(ctx context.Context, userID string, routine *domain.Routine) (*domain.Routine, error) {
	return s.Create(ctx, userID, routine)
}

// normalizeDays backfills day/exercise identifiers, orders and day-name
// fallbacks so every stored routine is fully addressable. Day orders must be
// unique within a routine; when the payload violates that (imports and
// legacy clients often send all zeros), slice position becomes the order.
func normalizeDays(routine *domain.Routine) {
	seen := make(map[int]bool, len(routine.Days))
	unique := true
	for _, day := range routine.Days {
		if seen[day.Order] {
			unique = false
			break
		}
		seen[day.Order] = true
	}

	for i := range routine.Days {
		day := &routine.Days[i]
		if day.ID == "" {
			day.ID = domain.DayID(newULID())
		}
		if !unique {
			day.Order = i
		}
		if day.Name == "" {
			day.Name = fmt.Sprintf("Day %d", day.Order+1)
		}
		normalizeExercises(day.Exercises)
		normalizeExercises(day.WarmUpExercises)
	}
}

func normalizeExercises(exercises []domain.Exercise) {
	for i := range exercises {
		if exercises[i].ID == "" {
			exercises[i].ID = domain.ExerciseID(newULID())
		}
	}
}
