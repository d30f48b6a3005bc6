// Package scheduler computes the "next workout" suggestion and the trailing
// window training summary from in-memory snapshots of a user's routines and
// logged sessions. Everything here is a pure function: no I/O, no state, safe
// for concurrent callers. Empty inputs and data drift (a session pointing at
// a day that was edited away) are normal conditions, never errors.
package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/maxgads/gymmax/internal/domain"
)

// DefaultWindowDays is the trailing-window length used when the profile does
// not override it.
const DefaultWindowDays = 7

// Suggestion points at the day the user should perform next. Ephemeral:
// recomputed on demand, never persisted.
type Suggestion struct {
	RoutineID   domain.RoutineID `json:"routineId"`
	DayID       domain.DayID     `json:"dayId"`
	RoutineName string           `json:"routineName"`
	DayName     string           `json:"dayName"`
}

// WeekSummary is the trailing-window adherence and volume aggregate.
type WeekSummary struct {
	// WorkoutsDone counts distinct calendar days with at least one session
	// in the window, across all routines.
	WorkoutsDone int `json:"workoutsDone"`
	// WorkoutsTotal is the day count of the active routine, the adherence
	// denominator.
	WorkoutsTotal int `json:"workoutsTotal"`
	// Volume is the rounded sum of reps x weight over parsable sets.
	Volume int `json:"volume"`
}

// SuggestNext picks the day to perform next: the active routine's days cycle
// in Order, advancing past the most recently logged day. Returns nil when no
// suggestion is possible (no routines, or the active routine has no days);
// callers should render an onboarding state instead.
func SuggestNext(routines []domain.Routine, sessions []domain.WorkoutSession) *Suggestion {
	active := ActiveRoutine(routines)
	if active == nil || len(active.Days) == 0 {
		return nil
	}

	days := active.SortedDays()
	next := days[0]

	if last := latestSessionFor(sessions, active.ID); last != nil {
		if idx := dayIndex(days, last.DayID); idx >= 0 {
			next = days[(idx+1)%len(days)]
		}
		// A vanished day id (routine edited after logging) falls back to
		// the first day.
	}

	return &Suggestion{
		RoutineID:   active.ID,
		DayID:       next.ID,
		RoutineName: active.Name,
		DayName:     dayDisplayName(next),
	}
}

// Summarize aggregates the trailing window [now - windowDays, now]. Sessions
// are compared by calendar date, so a session dated exactly windowDays days
// ago is still included. Sets whose reps or weight cannot be parsed, or whose
// weight is not strictly positive, contribute nothing; malformed history must
// never abort the aggregation.
func Summarize(routines []domain.Routine, sessions []domain.WorkoutSession, now time.Time, windowDays int) WeekSummary {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	var summary WeekSummary
	if active := ActiveRoutine(routines); active != nil {
		summary.WorkoutsTotal = len(active.Days)
	}

	boundary := dateOnly(now.AddDate(0, 0, -windowDays))
	seen := make(map[string]struct{})
	var volume float64

	for i := range sessions {
		s := &sessions[i]
		if dateOnly(s.PerformedAt).Before(boundary) {
			continue
		}
		seen[dayKey(s.PerformedAt)] = struct{}{}

		for _, ex := range s.LoggedExercises {
			for _, set := range ex.SetsPerformed {
				reps, ok := leadingInt(set.Reps)
				if !ok {
					continue
				}
				weight, ok := ParseWeight(set.WeightKg)
				if !ok || weight <= 0 {
					continue
				}
				volume += float64(reps) * weight
			}
		}
	}

	summary.WorkoutsDone = len(seen)
	summary.Volume = int(math.Round(volume))
	return summary
}

// Streak counts consecutive calendar days with at least one session, ending
// today or yesterday relative to now. A rest day today does not break a
// streak that ran through yesterday.
func Streak(sessions []domain.WorkoutSession, now time.Time) int {
	trained := make(map[string]struct{}, len(sessions))
	for i := range sessions {
		trained[dayKey(sessions[i].PerformedAt)] = struct{}{}
	}

	day := dateOnly(now)
	if _, ok := trained[dayKey(day)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := trained[dayKey(day)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// ActiveRoutine selects the routine with the most recent UpdatedAt. Ties are
// broken by the lexicographically smallest ID so the choice is deterministic
// regardless of snapshot order. Returns nil for an empty slice.
func ActiveRoutine(routines []domain.Routine) *domain.Routine {
	var active *domain.Routine
	for i := range routines {
		r := &routines[i]
		if active == nil || moreRecentRoutine(r, active) {
			active = r
		}
	}
	return active
}

func moreRecentRoutine(a, b *domain.Routine) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	return a.ID < b.ID
}

// latestSessionFor finds the most recent session logged against the routine.
// Same tie-break as ActiveRoutine: equal timestamps resolve to the smallest
// ID. Input order does not matter.
func latestSessionFor(sessions []domain.WorkoutSession, routineID domain.RoutineID) *domain.WorkoutSession {
	var latest *domain.WorkoutSession
	for i := range sessions {
		s := &sessions[i]
		if s.RoutineID != routineID {
			continue
		}
		if latest == nil || moreRecentSession(s, latest) {
			latest = s
		}
	}
	return latest
}

func moreRecentSession(a, b *domain.WorkoutSession) bool {
	if !a.PerformedAt.Equal(b.PerformedAt) {
		return a.PerformedAt.After(b.PerformedAt)
	}
	return a.ID < b.ID
}

func dayIndex(days []domain.Day, id domain.DayID) int {
	for i := range days {
		if days[i].ID == id {
			return i
		}
	}
	return -1
}

func dayDisplayName(d domain.Day) string {
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("Day %d", d.Order+1)
}
