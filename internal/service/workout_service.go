package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/maxgads/gymmax/internal/domain"
)

var ErrInvalidSession = errors.New("session must reference a routine and a day")

type WorkoutService struct {
	sessionRepo domain.WorkoutSessionRepository
}

func NewWorkoutService(sessionRepo domain.WorkoutSessionRepository) *WorkoutService {
	return &WorkoutService{
		sessionRepo: sessionRepo,
	}
}

// LogSession appends one completed workout. Sessions are immutable once
// written: exercises the user never touched (zero performed sets) are
// dropped, identifiers are backfilled, and the denormalized routine/day
// names travel with the record so history survives later routine edits.
func (s *WorkoutService) LogSession(ctx context.Context, userID string, session *domain.WorkoutSession) (*domain.WorkoutSession, error) {
	if session.RoutineID == "" || session.DayID == "" {
		return nil, ErrInvalidSession
	}

	session.ID = ""
	session.UserID = userID
	if session.PerformedAt.IsZero() {
		session.PerformedAt = time.Now()
	}

	kept := session.LoggedExercises[:0]
	for _, ex := range session.LoggedExercises {
		if len(ex.SetsPerformed) == 0 {
			continue
		}
		if ex.ID == "" {
			ex.ID = domain.LoggedExerciseID(newULID())
		}
		for i := range ex.SetsPerformed {
			if ex.SetsPerformed[i].ID == "" {
				ex.SetsPerformed[i].ID = domain.SetID(newULID())
			}
		}
		kept = append(kept, ex)
	}
	session.LoggedExercises = kept

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to log session: %w", err)
	}
	return session, nil
}

// List returns all of the user's sessions, most recent first.
func (s *WorkoutService) List(ctx context.Context, userID string) ([]*domain.WorkoutSession, error) {
	return s.sessionRepo.ListByUser(ctx, userID)
}

// LatestForRoutine returns the most recent session logged against the given
// routine, or nil if the routine has no history yet.
func (s *WorkoutService) LatestForRoutine(ctx context.Context, userID string, routineID domain.RoutineID) (*domain.WorkoutSession, error) {
	sessions, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, session := range sessions {
		if session.RoutineID == routineID {
			return session, nil
		}
	}
	return nil, nil
}

func (s *WorkoutService) Delete(ctx context.Context, userID string, id domain.SessionID) error {
	return s.sessionRepo.Delete(ctx, userID, id)
}

// LoggedExerciseNames returns the sorted distinct names of main (non warm-up)
// exercises across the user's history, for progress-tracking pickers.
func (s *WorkoutService) LoggedExerciseNames(ctx context.Context, userID string) ([]string, error) {
	sessions, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, session := range sessions {
		for _, ex := range session.LoggedExercises {
			if ex.IsWarmUp || seen[ex.ExerciseName] {
				continue
			}
			seen[ex.ExerciseName] = true
			names = append(names, ex.ExerciseName)
		}
	}
	sort.Strings(names)
	return names, nil
}
