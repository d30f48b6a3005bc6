package service

import (
	"context"
	"time"

	"github.com/maxgads/gymmax/internal/domain"
)

// In-memory repositories shared by the service tests.

type fakeRoutineRepo struct {
	routines map[domain.RoutineID]*domain.Routine
	nextID   int
}

func newFakeRoutineRepo() *fakeRoutineRepo {
	return &fakeRoutineRepo{routines: make(map[domain.RoutineID]*domain.Routine)}
}

func (r *fakeRoutineRepo) Create(_ context.Context, routine *domain.Routine) error {
	r.nextID++
	routine.ID = domain.RoutineID(string(rune('a' + r.nextID - 1)))
	routine.CreatedAt = time.Now()
	routine.UpdatedAt = routine.CreatedAt
	clone := *routine
	r.routines[routine.ID] = &clone
	return nil
}

func (r *fakeRoutineRepo) GetByID(_ context.Context, userID string, id domain.RoutineID) (*domain.Routine, error) {
	routine, ok := r.routines[id]
	if !ok || routine.UserID != userID {
		return nil, domain.ErrRoutineNotFound
	}
	clone := *routine
	return &clone, nil
}

func (r *fakeRoutineRepo) ListByUser(_ context.Context, userID string) ([]*domain.Routine, error) {
	var out []*domain.Routine
	for _, routine := range r.routines {
		if routine.UserID == userID {
			clone := *routine
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRoutineRepo) Update(_ context.Context, routine *domain.Routine) error {
	stored, ok := r.routines[routine.ID]
	if !ok || stored.UserID != routine.UserID {
		return domain.ErrRoutineNotFound
	}
	routine.UpdatedAt = time.Now()
	clone := *routine
	r.routines[routine.ID] = &clone
	return nil
}

func (r *fakeRoutineRepo) Delete(_ context.Context, userID string, id domain.RoutineID) error {
	stored, ok := r.routines[id]
	if !ok || stored.UserID != userID {
		return domain.ErrRoutineNotFound
	}
	delete(r.routines, id)
	return nil
}

type fakeSessionRepo struct {
	sessions []*domain.WorkoutSession
	nextID   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *domain.WorkoutSession) error {
	r.nextID++
	session.ID = domain.SessionID(string(rune('A' + r.nextID - 1)))
	clone := *session
	r.sessions = append(r.sessions, &clone)
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, userID string, id domain.SessionID) (*domain.WorkoutSession, error) {
	for _, session := range r.sessions {
		if session.ID == id && session.UserID == userID {
			clone := *session
			return &clone, nil
		}
	}
	return nil, domain.ErrSessionNotFound
}

func (r *fakeSessionRepo) ListByUser(_ context.Context, userID string) ([]*domain.WorkoutSession, error) {
	var out []*domain.WorkoutSession
	// Most recent first, matching the mongo repository's sort.
	for i := len(r.sessions) - 1; i >= 0; i-- {
		if r.sessions[i].UserID == userID {
			clone := *r.sessions[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) ListByUserAndRange(_ context.Context, userID string, from, to time.Time) ([]*domain.WorkoutSession, error) {
	var out []*domain.WorkoutSession
	for i := len(r.sessions) - 1; i >= 0; i-- {
		s := r.sessions[i]
		if s.UserID == userID && !s.PerformedAt.Before(from) && !s.PerformedAt.After(to) {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, userID string, id domain.SessionID) error {
	for i, session := range r.sessions {
		if session.ID == id && session.UserID == userID {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return nil
		}
	}
	return domain.ErrSessionNotFound
}

type fakeProfileRepo struct {
	profiles map[string]*domain.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*domain.UserProfile)}
}

func (r *fakeProfileRepo) Get(_ context.Context, userID string) (*domain.UserProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *profile
	return &clone, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, profile *domain.UserProfile) error {
	clone := *profile
	r.profiles[profile.UserID] = &clone
	return nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = "user-" + user.FirebaseUID
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByFirebaseUID(_ context.Context, uid string) (*domain.User, error) {
	for _, user := range r.users {
		if user.FirebaseUID == uid {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) UpdateFirebaseUID(_ context.Context, id string, firebaseUID string) error {
	user, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.FirebaseUID = firebaseUID
	return nil
}
