package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/maxgads/gymmax/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

func testRoutine(id string, updatedAt time.Time, dayIDs ...string) domain.Routine {
	r := domain.Routine{
		ID:        domain.RoutineID(id),
		UserID:    "u1",
		Name:      "Routine " + id,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
	for i, dayID := range dayIDs {
		r.Days = append(r.Days, domain.Day{
			ID:    domain.DayID(dayID),
			Name:  "Day " + dayID,
			Order: i,
			Exercises: []domain.Exercise{
				{ID: domain.ExerciseID(dayID + "-ex1"), Name: "Squat", Sets: "3", Reps: "5"},
			},
		})
	}
	return r
}

func testSession(id, routineID, dayID string, performedAt time.Time) domain.WorkoutSession {
	return domain.WorkoutSession{
		ID:          domain.SessionID(id),
		UserID:      "u1",
		RoutineID:   domain.RoutineID(routineID),
		DayID:       domain.DayID(dayID),
		PerformedAt: performedAt,
	}
}

func TestSuggestNext_NoRoutines(t *testing.T) {
	sessions := []domain.WorkoutSession{testSession("s1", "r1", "d1", testNow)}
	assert.Nil(t, SuggestNext(nil, sessions))
	assert.Nil(t, SuggestNext([]domain.Routine{}, sessions))
}

func TestSuggestNext_ActiveRoutineHasNoDays(t *testing.T) {
	routines := []domain.Routine{
		testRoutine("r1", testNow.Add(-48*time.Hour), "d1", "d2"),
		testRoutine("r2", testNow), // most recently updated, but empty
	}
	assert.Nil(t, SuggestNext(routines, nil))
}

func TestSuggestNext_NoSessionsSuggestsFirstDay(t *testing.T) {
	routines := []domain.Routine{testRoutine("r1", testNow, "d1", "d2", "d3")}

	got := SuggestNext(routines, nil)
	require.NotNil(t, got)
	assert.Equal(t, domain.RoutineID("r1"), got.RoutineID)
	assert.Equal(t, domain.DayID("d1"), got.DayID)
	assert.Equal(t, "Routine r1", got.RoutineName)
}

func TestSuggestNext_CyclesThroughDays(t *testing.T) {
	// Cycle property: a single session against day k suggests day (k+1) mod N.
	routines := []domain.Routine{testRoutine("r1", testNow, "d0", "d1", "d2")}

	for k := 0; k < 3; k++ {
		logged := fmt.Sprintf("d%d", k)
		want := fmt.Sprintf("d%d", (k+1)%3)
		sessions := []domain.WorkoutSession{testSession("s1", "r1", logged, testNow.Add(-24*time.Hour))}

		got := SuggestNext(routines, sessions)
		require.NotNil(t, got, "logged day %s", logged)
		assert.Equal(t, domain.DayID(want), got.DayID, "logged day %s", logged)
	}
}

func TestSuggestNext_UsesMostRecentSession(t *testing.T) {
	routines := []domain.Routine{testRoutine("r1", testNow, "d0", "d1", "d2")}
	// Unsorted on purpose: the function must not assume pre-sorting.
	sessions := []domain.WorkoutSession{
		testSession("s2", "r1", "d0", testNow.Add(-24*time.Hour)),
		testSession("s1", "r1", "d1", testNow.Add(-72*time.Hour)),
	}

	got := SuggestNext(routines, sessions)
	require.NotNil(t, got)
	assert.Equal(t, domain.DayID("d1"), got.DayID)
}

func TestSuggestNext_OrphanedDayFallsBackToFirst(t *testing.T) {
	routines := []domain.Routine{testRoutine("r1", testNow, "d0", "d1")}
	sessions := []domain.WorkoutSession{testSession("s1", "r1", "gone", testNow.Add(-24*time.Hour))}

	got := SuggestNext(routines, sessions)
	require.NotNil(t, got)
	assert.Equal(t, domain.DayID("d0"), got.DayID)
}

func TestSuggestNext_IgnoresSessionsOfOtherRoutines(t *testing.T) {
	routines := []domain.Routine{
		testRoutine("r1", testNow, "a0", "a1"),
		testRoutine("r2", testNow.Add(-time.Hour), "b0", "b1"),
	}
	// Only r2 has history; the active routine r1 starts from its first day.
	sessions := []domain.WorkoutSession{testSession("s1", "r2", "b0", testNow.Add(-time.Hour))}

	got := SuggestNext(routines, sessions)
	require.NotNil(t, got)
	assert.Equal(t, domain.RoutineID("r1"), got.RoutineID)
	assert.Equal(t, domain.DayID("a0"), got.DayID)
}

func TestSuggestNext_DaysSortedByOrderNotPosition(t *testing.T) {
	r := testRoutine("r1", testNow, "x", "y", "z")
	// Scramble slice positions; Order still says x(0), y(1), z(2).
	r.Days[0], r.Days[2] = r.Days[2], r.Days[0]
	sessions := []domain.WorkoutSession{testSession("s1", "r1", "y", testNow.Add(-time.Hour))}

	got := SuggestNext([]domain.Routine{r}, sessions)
	require.NotNil(t, got)
	assert.Equal(t, domain.DayID("z"), got.DayID)
}

func TestSuggestNext_DayNameFallback(t *testing.T) {
	r := testRoutine("r1", testNow, "d0", "d1")
	r.Days[1].Name = ""
	sessions := []domain.WorkoutSession{testSession("s1", "r1", "d0", testNow.Add(-time.Hour))}

	got := SuggestNext([]domain.Routine{r}, sessions)
	require.NotNil(t, got)
	assert.Equal(t, "Day 2", got.DayName)
}

func TestSuggestNext_Idempotent(t *testing.T) {
	routines := []domain.Routine{testRoutine("r1", testNow, "d0", "d1", "d2")}
	sessions := []domain.WorkoutSession{testSession("s1", "r1", "d1", testNow.Add(-time.Hour))}

	first := SuggestNext(routines, sessions)
	second := SuggestNext(routines, sessions)
	assert.Equal(t, first, second)
}

func TestSuggestNext_SuggestedDayBelongsToActiveRoutine(t *testing.T) {
	routines := []domain.Routine{
		testRoutine("r1", testNow.Add(-time.Hour), "a0", "a1"),
		testRoutine("r2", testNow, "b0", "b1", "b2"),
	}
	sessions := []domain.WorkoutSession{
		testSession("s1", "r1", "a1", testNow.Add(-48*time.Hour)),
		testSession("s2", "r2", "b2", testNow.Add(-24*time.Hour)),
	}

	got := SuggestNext(routines, sessions)
	require.NotNil(t, got)
	require.Equal(t, domain.RoutineID("r2"), got.RoutineID)

	found := false
	for _, d := range routines[1].Days {
		if d.ID == got.DayID {
			found = true
		}
	}
	assert.True(t, found, "suggested day must belong to the active routine")
}

func TestActiveRoutine_TieBreaksOnID(t *testing.T) {
	// Equal UpdatedAt resolves to the lexicographically smallest ID,
	// independent of slice order.
	ra := testRoutine("aaa", testNow, "d0")
	rb := testRoutine("bbb", testNow, "d0")

	assert.Equal(t, domain.RoutineID("aaa"), ActiveRoutine([]domain.Routine{ra, rb}).ID)
	assert.Equal(t, domain.RoutineID("aaa"), ActiveRoutine([]domain.Routine{rb, ra}).ID)
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, nil, testNow, DefaultWindowDays)
	assert.Equal(t, WeekSummary{}, got)
}

func TestSummarize_DenominatorFromActiveRoutine(t *testing.T) {
	routines := []domain.Routine{
		testRoutine("r1", testNow.Add(-time.Hour), "a0", "a1", "a2", "a3"),
		testRoutine("r2", testNow, "b0", "b1", "b2"),
	}
	got := Summarize(routines, nil, testNow, DefaultWindowDays)
	assert.Equal(t, 3, got.WorkoutsTotal)
}

func TestSummarize_Volume(t *testing.T) {
	s := testSession("s1", "r1", "d0", testNow.Add(-24*time.Hour))
	s.LoggedExercises = []domain.LoggedExercise{{
		ID:           "le1",
		ExerciseName: "Bench Press",
		SetsPerformed: []domain.PerformedSet{
			{ID: "p1", Reps: "10", WeightKg: "50"},
			{ID: "p2", Reps: "8-12", WeightKg: "abc"}, // unparsable weight: skipped
		},
	}}

	got := Summarize(nil, []domain.WorkoutSession{s}, testNow, DefaultWindowDays)
	assert.Equal(t, 500, got.Volume)
	assert.Equal(t, 1, got.WorkoutsDone)
}

func TestSummarize_VolumeParsing(t *testing.T) {
	tests := []struct {
		name   string
		reps   string
		weight string
		want   int
	}{
		{"plain", "10", "50", 500},
		{"rep range takes leading token", "8-12", "100", 800},
		{"comma decimal separator", "10", "62,5", 625},
		{"unit suffix ignored", "5", "80kg", 400},
		{"bodyweight marker skipped", "10", "BW", 0},
		{"non-numeric reps skipped", "Al fallo", "50", 0},
		{"zero weight skipped", "10", "0", 0},
		{"fractional total rounds", "3", "20,5", 62}, // 61.5 -> 62
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSession("s1", "r1", "d0", testNow.Add(-time.Hour))
			s.LoggedExercises = []domain.LoggedExercise{{
				SetsPerformed: []domain.PerformedSet{{Reps: tt.reps, WeightKg: tt.weight}},
			}}
			got := Summarize(nil, []domain.WorkoutSession{s}, testNow, DefaultWindowDays)
			assert.Equal(t, tt.want, got.Volume)
		})
	}
}

func TestSummarize_DistinctDaysNotSessions(t *testing.T) {
	sameDay := time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC)
	sessions := []domain.WorkoutSession{
		testSession("s1", "r1", "d0", sameDay),
		testSession("s2", "r1", "d1", sameDay.Add(10*time.Hour)),
	}

	got := Summarize(nil, sessions, testNow, DefaultWindowDays)
	assert.Equal(t, 1, got.WorkoutsDone)
}

func TestSummarize_WindowBoundary(t *testing.T) {
	sessions := []domain.WorkoutSession{
		testSession("s1", "r1", "d0", testNow.AddDate(0, 0, -7)), // exactly 7 days ago: in
		testSession("s2", "r1", "d1", testNow.AddDate(0, 0, -8)), // 8 days ago: out
	}

	got := Summarize(nil, sessions, testNow, DefaultWindowDays)
	assert.Equal(t, 1, got.WorkoutsDone)
}

func TestSummarize_CountsAllRoutines(t *testing.T) {
	// Adherence counts sessions regardless of which routine they belong to.
	sessions := []domain.WorkoutSession{
		testSession("s1", "r1", "d0", testNow.Add(-24*time.Hour)),
		testSession("s2", "r2", "d0", testNow.Add(-48*time.Hour)),
	}

	got := Summarize(nil, sessions, testNow, DefaultWindowDays)
	assert.Equal(t, 2, got.WorkoutsDone)
}

func TestSummarize_CustomWindow(t *testing.T) {
	sessions := []domain.WorkoutSession{
		testSession("s1", "r1", "d0", testNow.AddDate(0, 0, -10)),
	}

	assert.Equal(t, 0, Summarize(nil, sessions, testNow, 7).WorkoutsDone)
	assert.Equal(t, 1, Summarize(nil, sessions, testNow, 14).WorkoutsDone)
}

func TestEndToEndScenario(t *testing.T) {
	// Routine "PPL" with days mon, wed, fri. Sessions: wed three days ago,
	// mon one day ago. Suggestion advances past mon to wed; summary sees two
	// distinct days and a three-day denominator.
	ppl := testRoutine("ppl", testNow, "mon", "wed", "fri")
	ppl.Name = "PPL"
	routines := []domain.Routine{ppl}
	sessions := []domain.WorkoutSession{
		testSession("s1", "ppl", "wed", testNow.AddDate(0, 0, -3)),
		testSession("s2", "ppl", "mon", testNow.AddDate(0, 0, -1)),
	}

	got := SuggestNext(routines, sessions)
	require.NotNil(t, got)
	assert.Equal(t, domain.DayID("wed"), got.DayID)
	assert.Equal(t, "PPL", got.RoutineName)

	summary := Summarize(routines, sessions, testNow, DefaultWindowDays)
	assert.Equal(t, 2, summary.WorkoutsDone)
	assert.Equal(t, 3, summary.WorkoutsTotal)
}

func TestStreak(t *testing.T) {
	day := func(offset int) time.Time { return testNow.AddDate(0, 0, offset) }

	tests := []struct {
		name    string
		offsets []int
		want    int
	}{
		{"no sessions", nil, 0},
		{"trained today only", []int{0}, 1},
		{"three days ending today", []int{0, -1, -2}, 3},
		{"ended yesterday still counts", []int{-1, -2}, 2},
		{"gap breaks streak", []int{0, -2, -3}, 1},
		{"stale history", []int{-5, -6}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sessions []domain.WorkoutSession
			for i, off := range tt.offsets {
				sessions = append(sessions, testSession(fmt.Sprintf("s%d", i), "r1", "d0", day(off)))
			}
			assert.Equal(t, tt.want, Streak(sessions, testNow))
		})
	}
}
