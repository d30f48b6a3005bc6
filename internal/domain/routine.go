package domain

import (
	"context"
	"errors"
	"sort"
	"time"
)

var (
	ErrRoutineNotFound = errors.New("routine not found")
)

// Exercise is a planned template entry inside a Day. Sets and Reps stay
// textual because plans carry ranges ("3-4", "8-12") and non-numeric markers
// ("Al fallo").
type Exercise struct {
	ID       ExerciseID `json:"id" bson:"id"`
	Name     string     `json:"exerciseName" bson:"name"`
	Sets     string     `json:"sets" bson:"sets"`
	Reps     string     `json:"reps" bson:"reps"`
	WeightKg string     `json:"weightKg,omitempty" bson:"weight_kg,omitempty"`
	Notes    string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Day is one planned training session within a Routine. Order is unique
// within the routine and defines iteration order.
type Day struct {
	ID              DayID      `json:"id" bson:"id"`
	Name            string     `json:"name" bson:"name"`
	Order           int        `json:"order" bson:"order"`
	Exercises       []Exercise `json:"exercises" bson:"exercises"`
	WarmUpExercises []Exercise `json:"warmUpExercises,omitempty" bson:"warm_up_exercises,omitempty"`
}

// Routine is a named, reusable training plan composed of ordered Days.
type Routine struct {
	ID          RoutineID `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"userId" bson:"user_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Days        []Day     `json:"days" bson:"days"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// SortedDays returns the routine's days ascending by Order without mutating
// the routine.
func (r *Routine) SortedDays() []Day {
	days := make([]Day, len(r.Days))
	copy(days, r.Days)
	sort.SliceStable(days, func(i, j int) bool { return days[i].Order < days[j].Order })
	return days
}

type RoutineRepository interface {
	Create(ctx context.Context, routine *Routine) error
	GetByID(ctx context.Context, userID string, id RoutineID) (*Routine, error)
	ListByUser(ctx context.Context, userID string) ([]*Routine, error)
	Update(ctx context.Context, routine *Routine) error
	Delete(ctx context.Context, userID string, id RoutineID) error
}
