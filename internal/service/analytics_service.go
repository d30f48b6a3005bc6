package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/maxgads/gymmax/internal/domain"
	"github.com/maxgads/gymmax/internal/scheduler"
)

// ProgressPoint is the heaviest set of one exercise in one session.
type ProgressPoint struct {
	Date        string  `json:"date"` // 2006-01-02
	MaxWeightKg float64 `json:"maxWeightKg"`
}

// ExerciseProgress is the max-weight history of a single exercise,
// chronological.
type ExerciseProgress struct {
	ExerciseName string          `json:"exerciseName"`
	Points       []ProgressPoint `json:"points"`
}

// AnalyticsService derives progress charts from the raw session history.
type AnalyticsService struct {
	sessionRepo domain.WorkoutSessionRepository
}

func NewAnalyticsService(sessionRepo domain.WorkoutSessionRepository) *AnalyticsService {
	return &AnalyticsService{
		sessionRepo: sessionRepo,
	}
}

// ExerciseProgress groups the user's sessions by exercise name and extracts
// the heaviest parsable weight per session. Sessions where no set carries a
// parsable weight still produce a zero point, so bodyweight days stay visible
// on the chart. Exercises are returned sorted by name.
func (s *AnalyticsService) ExerciseProgress(ctx context.Context, userID string) ([]ExerciseProgress, error) {
	sessions, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	byExercise := make(map[string][]ProgressPoint)
	// ListByUser is most recent first; walk backwards for chronological series.
	for i := len(sessions) - 1; i >= 0; i-- {
		session := sessions[i]
		for _, ex := range session.LoggedExercises {
			if ex.IsWarmUp {
				continue
			}
			max := 0.0
			for _, set := range ex.SetsPerformed {
				if kg, ok := scheduler.ParseWeight(set.WeightKg); ok && kg > max {
					max = kg
				}
			}
			byExercise[ex.ExerciseName] = append(byExercise[ex.ExerciseName], ProgressPoint{
				Date:        session.PerformedAt.Format("2006-01-02"),
				MaxWeightKg: max,
			})
		}
	}

	names := make([]string, 0, len(byExercise))
	for name := range byExercise {
		names = append(names, name)
	}
	sort.Strings(names)

	progress := make([]ExerciseProgress, 0, len(names))
	for _, name := range names {
		progress = append(progress, ExerciseProgress{
			ExerciseName: name,
			Points:       byExercise[name],
		})
	}
	return progress, nil
}
