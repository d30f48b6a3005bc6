package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maxgads/gymmax/internal/domain"
	"github.com/maxgads/gymmax/internal/scheduler"
	"golang.org/x/sync/errgroup"
)

// DashboardCache is the slice of the cache repository the dashboard needs.
type DashboardCache interface {
	GetHomeDashboard(ctx context.Context, userID string, dest interface{}) error
	SetHomeDashboard(ctx context.Context, userID string, data interface{}, ttl time.Duration) error
}

const homeDashboardTTL = 30 * time.Second

// HomeDashboard is everything the home screen renders in one payload.
type HomeDashboard struct {
	Suggestion *scheduler.Suggestion `json:"suggestion"` // nil = onboarding state
	Week       scheduler.WeekSummary `json:"week"`
	Streak     int                   `json:"streak"`
}

// DashboardService assembles the home dashboard: it fans in the routine,
// session and profile snapshots, then runs the scheduler over them. The
// scheduler itself stays pure; all fetching and caching lives here.
type DashboardService struct {
	routineRepo   domain.RoutineRepository
	sessionRepo   domain.WorkoutSessionRepository
	profileRepo   domain.ProfileRepository
	cache         DashboardCache
	defaultWindow int
	now           func() time.Time
}

// defaultWindowDays is the server-wide summary window, used when the user's
// profile doesn't set one. Zero falls back to the scheduler default.
func NewDashboardService(
	routineRepo domain.RoutineRepository,
	sessionRepo domain.WorkoutSessionRepository,
	profileRepo domain.ProfileRepository,
	cache DashboardCache,
	defaultWindowDays int,
) *DashboardService {
	return &DashboardService{
		routineRepo:   routineRepo,
		sessionRepo:   sessionRepo,
		profileRepo:   profileRepo,
		cache:         cache,
		defaultWindow: defaultWindowDays,
		now:           time.Now,
	}
}

// Home computes the dashboard for a user. The result is cached briefly;
// routine and session writes invalidate the cache so a fresh snapshot wins
// over an in-flight stale one.
func (s *DashboardService) Home(ctx context.Context, userID string) (*HomeDashboard, error) {
	if s.cache != nil {
		var cached HomeDashboard
		if err := s.cache.GetHomeDashboard(ctx, userID, &cached); err == nil {
			return &cached, nil
		}
	}

	var (
		routines []*domain.Routine
		sessions []*domain.WorkoutSession
		profile  *domain.UserProfile
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		routines, err = s.routineRepo.ListByUser(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to list routines: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sessions, err = s.sessionRepo.ListByUser(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		profile, err = s.profileRepo.Get(gCtx, userID)
		if err == domain.ErrNotFound {
			profile = nil
			return nil // missing profile just means defaults
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	windowDays := s.defaultWindow
	if windowDays <= 0 {
		windowDays = scheduler.DefaultWindowDays
	}
	if profile != nil && profile.SummaryWindowDays > 0 {
		windowDays = profile.SummaryWindowDays
	}

	routineVals := derefRoutines(routines)
	sessionVals := derefSessions(sessions)
	now := s.now()

	dashboard := &HomeDashboard{
		Suggestion: scheduler.SuggestNext(routineVals, sessionVals),
		Week:       scheduler.Summarize(routineVals, sessionVals, now, windowDays),
		Streak:     scheduler.Streak(sessionVals, now),
	}

	if s.cache != nil {
		_ = s.cache.SetHomeDashboard(ctx, userID, dashboard, homeDashboardTTL)
	}
	return dashboard, nil
}

func derefRoutines(in []*domain.Routine) []domain.Routine {
	out := make([]domain.Routine, 0, len(in))
	for _, r := range in {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

func derefSessions(in []*domain.WorkoutSession) []domain.WorkoutSession {
	out := make([]domain.WorkoutSession, 0, len(in))
	for _, s := range in {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}
