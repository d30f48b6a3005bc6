package service

import (
	"context"
	"testing"
	"time"

	"github.com/maxgads/gymmax/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRoutine(t *testing.T, repo *fakeRoutineRepo, userID string, dayCount int) *domain.Routine {
	t.Helper()
	routine := &domain.Routine{UserID: userID, Name: "Plan"}
	for i := 0; i < dayCount; i++ {
		routine.Days = append(routine.Days, domain.Day{
			ID:    domain.DayID(string(rune('x' + i))),
			Name:  "Day",
			Order: i,
		})
	}
	require.NoError(t, repo.Create(context.Background(), routine))
	return routine
}

func TestDashboardHomeEmptyAccount(t *testing.T) {
	svc := NewDashboardService(newFakeRoutineRepo(), newFakeSessionRepo(), newFakeProfileRepo(), nil, 0)

	home, err := svc.Home(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, home.Suggestion)
	assert.Equal(t, 0, home.Week.WorkoutsDone)
	assert.Equal(t, 0, home.Week.WorkoutsTotal)
	assert.Equal(t, 0, home.Streak)
}

func TestDashboardHomeSuggestsNextDay(t *testing.T) {
	routineRepo := newFakeRoutineRepo()
	sessionRepo := newFakeSessionRepo()
	routine := seedRoutine(t, routineRepo, "u1", 3)

	days := routine.SortedDays()
	require.NoError(t, sessionRepo.Create(context.Background(), &domain.WorkoutSession{
		UserID:      "u1",
		RoutineID:   routine.ID,
		DayID:       days[0].ID,
		PerformedAt: time.Now().Add(-24 * time.Hour),
	}))

	svc := NewDashboardService(routineRepo, sessionRepo, newFakeProfileRepo(), nil, 0)
	home, err := svc.Home(context.Background(), "u1")
	require.NoError(t, err)

	require.NotNil(t, home.Suggestion)
	assert.Equal(t, routine.ID, home.Suggestion.RoutineID)
	assert.Equal(t, days[1].ID, home.Suggestion.DayID)
	assert.Equal(t, 1, home.Week.WorkoutsDone)
	assert.Equal(t, 3, home.Week.WorkoutsTotal)
}

func TestDashboardHomeHonorsProfileWindow(t *testing.T) {
	routineRepo := newFakeRoutineRepo()
	sessionRepo := newFakeSessionRepo()
	profileRepo := newFakeProfileRepo()
	routine := seedRoutine(t, routineRepo, "u1", 2)

	// One session 10 days ago: outside the default window, inside a 14-day one.
	require.NoError(t, sessionRepo.Create(context.Background(), &domain.WorkoutSession{
		UserID:      "u1",
		RoutineID:   routine.ID,
		DayID:       routine.Days[0].ID,
		PerformedAt: time.Now().AddDate(0, 0, -10),
	}))
	require.NoError(t, profileRepo.Upsert(context.Background(), &domain.UserProfile{
		UserID:            "u1",
		SummaryWindowDays: 14,
	}))

	svc := NewDashboardService(routineRepo, sessionRepo, profileRepo, nil, 0)
	home, err := svc.Home(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, home.Week.WorkoutsDone)
}

func TestDashboardHomeUsesConfiguredDefaultWindow(t *testing.T) {
	routineRepo := newFakeRoutineRepo()
	sessionRepo := newFakeSessionRepo()
	routine := seedRoutine(t, routineRepo, "u1", 2)

	// No profile: a session 10 days ago only counts when the server-wide
	// default window is wide enough.
	require.NoError(t, sessionRepo.Create(context.Background(), &domain.WorkoutSession{
		UserID:      "u1",
		RoutineID:   routine.ID,
		DayID:       routine.Days[0].ID,
		PerformedAt: time.Now().AddDate(0, 0, -10),
	}))

	narrow := NewDashboardService(routineRepo, sessionRepo, newFakeProfileRepo(), nil, 7)
	home, err := narrow.Home(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, home.Week.WorkoutsDone)

	wide := NewDashboardService(routineRepo, sessionRepo, newFakeProfileRepo(), nil, 14)
	home, err = wide.Home(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, home.Week.WorkoutsDone)
}

type fakeDashboardCache struct {
	stored map[string]*HomeDashboard
	hits   int
	sets   int
}

func (c *fakeDashboardCache) GetHomeDashboard(_ context.Context, userID string, dest interface{}) error {
	cached, ok := c.stored[userID]
	if !ok {
		return domain.ErrNotFound
	}
	c.hits++
	*dest.(*HomeDashboard) = *cached
	return nil
}

func (c *fakeDashboardCache) SetHomeDashboard(_ context.Context, userID string, data interface{}, _ time.Duration) error {
	if c.stored == nil {
		c.stored = make(map[string]*HomeDashboard)
	}
	c.sets++
	c.stored[userID] = data.(*HomeDashboard)
	return nil
}

func TestDashboardHomeUsesCache(t *testing.T) {
	cache := &fakeDashboardCache{}
	svc := NewDashboardService(newFakeRoutineRepo(), newFakeSessionRepo(), newFakeProfileRepo(), cache, 0)

	_, err := svc.Home(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	_, err = svc.Home(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, cache.sets, "second call should be served from cache")
}
