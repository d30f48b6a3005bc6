package service

import (
	"context"
	"testing"
	"time"

	"github.com/maxgads/gymmax/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFoodEntryRepo struct {
	entries []*domain.FoodEntry
	nextID  int
}

func (r *fakeFoodEntryRepo) Create(_ context.Context, entry *domain.FoodEntry) error {
	r.nextID++
	entry.ID = domain.EntryID(string(rune('0' + r.nextID)))
	clone := *entry
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *fakeFoodEntryRepo) ListByUserAndDay(ctx context.Context, userID string, day time.Time) ([]*domain.FoodEntry, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return r.ListByUserAndRange(ctx, userID, start, start.AddDate(0, 0, 1).Add(-time.Nanosecond))
}

func (r *fakeFoodEntryRepo) ListByUserAndRange(_ context.Context, userID string, from, to time.Time) ([]*domain.FoodEntry, error) {
	var out []*domain.FoodEntry
	for _, entry := range r.entries {
		if entry.UserID == userID && !entry.Date.Before(from) && !entry.Date.After(to) {
			clone := *entry
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeFoodEntryRepo) Update(_ context.Context, entry *domain.FoodEntry) error {
	for i, stored := range r.entries {
		if stored.ID == entry.ID && stored.UserID == entry.UserID {
			clone := *entry
			r.entries[i] = &clone
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func (r *fakeFoodEntryRepo) Delete(_ context.Context, userID string, id domain.EntryID) error {
	for i, stored := range r.entries {
		if stored.ID == id && stored.UserID == userID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func TestAddEntryValidatesAndDefaults(t *testing.T) {
	svc := NewNutritionService(&fakeFoodEntryRepo{}, newFakeProfileRepo())

	_, err := svc.AddEntry(context.Background(), "u1", &domain.FoodEntry{Calories: 100})
	assert.ErrorIs(t, err, ErrInvalidEntry)

	entry, err := svc.AddEntry(context.Background(), "u1", &domain.FoodEntry{
		FoodName: "Avena",
		Calories: 350,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MealSnack, entry.MealType)
	assert.False(t, entry.Date.IsZero())
}

func TestDayTotalsAgainstGoal(t *testing.T) {
	entryRepo := &fakeFoodEntryRepo{}
	profileRepo := newFakeProfileRepo()
	require.NoError(t, profileRepo.Upsert(context.Background(), &domain.UserProfile{
		UserID:      "u1",
		CalorieGoal: 2500,
	}))
	svc := NewNutritionService(entryRepo, profileRepo)

	today := time.Now()
	for _, e := range []*domain.FoodEntry{
		{FoodName: "Avena", Calories: 350.4, Date: today, MealType: domain.MealBreakfast, Macros: domain.Macros{Protein: 12}},
		{FoodName: "Pollo con arroz", Calories: 620, Date: today, MealType: domain.MealLunch, Macros: domain.Macros{Protein: 45}},
		{FoodName: "Ayer", Calories: 500, Date: today.AddDate(0, 0, -1)},
	} {
		_, err := svc.AddEntry(context.Background(), "u1", e)
		require.NoError(t, err)
	}

	log, err := svc.Day(context.Background(), "u1", today)
	require.NoError(t, err)
	assert.Len(t, log.Entries, 2)
	assert.Equal(t, 970, log.TotalCalories)
	assert.Equal(t, 57.0, log.TotalMacros.Protein)
	assert.Equal(t, 2500, log.CalorieGoal)
}

func TestCalorieSeriesZeroFills(t *testing.T) {
	entryRepo := &fakeFoodEntryRepo{}
	svc := NewNutritionService(entryRepo, newFakeProfileRepo())

	now := time.Now()
	_, err := svc.AddEntry(context.Background(), "u1", &domain.FoodEntry{
		FoodName: "Cena", Calories: 700, Date: now.AddDate(0, 0, -2),
	})
	require.NoError(t, err)

	series, err := svc.CalorieSeries(context.Background(), "u1", 7)
	require.NoError(t, err)
	require.Len(t, series, 7)

	assert.Equal(t, 700, series[4].Calories)
	assert.Equal(t, now.Format("2006-01-02"), series[6].Date)
	assert.Equal(t, 0, series[6].Calories)
}
