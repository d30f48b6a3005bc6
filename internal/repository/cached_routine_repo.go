package repository

import (
	"context"
	"time"

	"github.com/maxgads/gymmax/internal/domain"
)

const routineListCacheTTL = 2 * time.Minute

// CachedRoutineRepository wraps MongoRoutineRepository with Redis caching of
// the per-user routine list. The list is what the scheduler reads on every
// dashboard render, so it is the hot path worth caching; single-routine
// reads pass through.
type CachedRoutineRepository struct {
	mongo *MongoRoutineRepository
	cache *RedisCacheRepository
}

// NewCachedRoutineRepository creates a new cached routine repository
func NewCachedRoutineRepository(mongo *MongoRoutineRepository, cache *RedisCacheRepository) *CachedRoutineRepository {
	return &CachedRoutineRepository{
		mongo: mongo,
		cache: cache,
	}
}

// ListByUser retrieves the user's routines with caching
func (r *CachedRoutineRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Routine, error) {
	key := routineListKeyPrefix + userID

	var routines []*domain.Routine
	if err := r.cache.Get(ctx, key, &routines); err == nil {
		return routines, nil
	}

	// Cache miss - fetch from MongoDB
	result, err := r.mongo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore cache errors)
	_ = r.cache.Set(ctx, key, result, routineListCacheTTL)

	return result, nil
}

// Create creates a routine and invalidates the user's cached list
func (r *CachedRoutineRepository) Create(ctx context.Context, routine *domain.Routine) error {
	if err := r.mongo.Create(ctx, routine); err != nil {
		return err
	}
	_ = r.cache.InvalidateRoutineList(ctx, routine.UserID)
	_ = r.cache.InvalidateHomeDashboard(ctx, routine.UserID)
	return nil
}

// Update updates a routine and invalidates the user's cached list
func (r *CachedRoutineRepository) Update(ctx context.Context, routine *domain.Routine) error {
	if err := r.mongo.Update(ctx, routine); err != nil {
		return err
	}
	_ = r.cache.InvalidateRoutineList(ctx, routine.UserID)
	_ = r.cache.InvalidateHomeDashboard(ctx, routine.UserID)
	return nil
}

// Delete deletes a routine and invalidates the user's cached list
func (r *CachedRoutineRepository) Delete(ctx context.Context, userID string, id domain.RoutineID) error {
	if err := r.mongo.Delete(ctx, userID, id); err != nil {
		return err
	}
	_ = r.cache.InvalidateRoutineList(ctx, userID)
	_ = r.cache.InvalidateHomeDashboard(ctx, userID)
	return nil
}

// GetByID passes through without caching
func (r *CachedRoutineRepository) GetByID(ctx context.Context, userID string, id domain.RoutineID) (*domain.Routine, error) {
	return r.mongo.GetByID(ctx, userID, id)
}
