package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSessionNotFound = errors.New("workout session not found")
)

// PerformedSet is one set actually done. Reps and WeightKg stay textual:
// historical logs contain ranges ("8-12"), comma decimals ("62,5") and
// bodyweight markers ("BW"); the scheduler parses them leniently.
type PerformedSet struct {
	ID       SetID  `json:"id" bson:"id"`
	Reps     string `json:"reps" bson:"reps"`
	WeightKg string `json:"weightKg" bson:"weight_kg"`
	Notes    string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// LoggedExercise is the as-performed record for one planned exercise.
type LoggedExercise struct {
	ID            LoggedExerciseID `json:"id" bson:"id"`
	ExerciseID    ExerciseID       `json:"exerciseId" bson:"exercise_id"`
	ExerciseName  string           `json:"exerciseName" bson:"exercise_name"` // Denormalized for easy display
	IsWarmUp      bool             `json:"isWarmUp" bson:"is_warm_up"`
	SetsPerformed []PerformedSet   `json:"setsPerformed" bson:"sets_performed"`
	Notes         string           `json:"exerciseNotes,omitempty" bson:"notes,omitempty"`
}

// WorkoutSession is an immutable log of one performed training session.
// RoutineName and DayName are copied at logging time so history survives
// routine edits and deletions.
type WorkoutSession struct {
	ID              SessionID        `json:"id" bson:"_id,omitempty"`
	UserID          string           `json:"userId" bson:"user_id"`
	RoutineID       RoutineID        `json:"routineId" bson:"routine_id"`
	DayID           DayID            `json:"dayId" bson:"day_id"`
	RoutineName     string           `json:"routineName" bson:"routine_name"`
	DayName         string           `json:"dayName" bson:"day_name"`
	PerformedAt     time.Time        `json:"date" bson:"performed_at"`
	LoggedExercises []LoggedExercise `json:"loggedExercises" bson:"logged_exercises"`
	Notes           string           `json:"sessionNotes,omitempty" bson:"notes,omitempty"`
}

type WorkoutSessionRepository interface {
	Create(ctx context.Context, session *WorkoutSession) error
	GetByID(ctx context.Context, userID string, id SessionID) (*WorkoutSession, error)
	// ListByUser returns all sessions for a user, most recent first.
	ListByUser(ctx context.Context, userID string) ([]*WorkoutSession, error)
	// ListByUserAndRange returns sessions performed within [from, to].
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*WorkoutSession, error)
	Delete(ctx context.Context, userID string, id SessionID) error
}
