package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/maxgads/gymmax/internal/domain"
)

var ErrInvalidEntry = errors.New("food entry must have a name and non-negative calories")

type NutritionService struct {
	entryRepo   domain.FoodEntryRepository
	profileRepo domain.ProfileRepository
}

func NewNutritionService(entryRepo domain.FoodEntryRepository, profileRepo domain.ProfileRepository) *NutritionService {
	return &NutritionService{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
	}
}

// DailyLog is one day of nutrition: its entries grouped under running totals
// against the calorie goal.
type DailyLog struct {
	Date          time.Time           `json:"date"`
	Entries       []*domain.FoodEntry `json:"entries"`
	TotalCalories int                 `json:"totalCalories"`
	TotalMacros   domain.Macros       `json:"totalMacros"`
	CalorieGoal   int                 `json:"calorieGoal"`
}

// CaloriePoint is one day in the trailing calorie series.
type CaloriePoint struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Calories int    `json:"calories"`
}

func (s *NutritionService) AddEntry(ctx context.Context, userID string, entry *domain.FoodEntry) (*domain.FoodEntry, error) {
	if entry.FoodName == "" || entry.Calories < 0 {
		return nil, ErrInvalidEntry
	}
	entry.ID = ""
	entry.UserID = userID
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	if entry.MealType == "" {
		entry.MealType = domain.MealSnack
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to add food entry: %w", err)
	}
	return entry, nil
}

func (s *NutritionService) UpdateEntry(ctx context.Context, userID string, entry *domain.FoodEntry) (*domain.FoodEntry, error) {
	if entry.FoodName == "" || entry.Calories < 0 {
		return nil, ErrInvalidEntry
	}
	entry.UserID = userID
	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *NutritionService) DeleteEntry(ctx context.Context, userID string, id domain.EntryID) error {
	return s.entryRepo.Delete(ctx, userID, id)
}

// Day returns the log for one calendar day with totals and the user's goal.
func (s *NutritionService) Day(ctx context.Context, userID string, day time.Time) (*DailyLog, error) {
	entries, err := s.entryRepo.ListByUserAndDay(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list food entries: %w", err)
	}

	log := &DailyLog{
		Date:        day,
		Entries:     entries,
		CalorieGoal: 2000,
	}
	if profile, perr := s.profileRepo.Get(ctx, userID); perr == nil && profile.CalorieGoal > 0 {
		log.CalorieGoal = profile.CalorieGoal
	}

	var calories float64
	for _, entry := range entries {
		calories += entry.Calories
		log.TotalMacros.Protein += entry.Macros.Protein
		log.TotalMacros.Carbs += entry.Macros.Carbs
		log.TotalMacros.Fats += entry.Macros.Fats
	}
	log.TotalCalories = int(math.Round(calories))
	return log, nil
}

// CalorieSeries returns per-day calorie totals for the trailing window ending
// today, zero-filled so charts always get a point per day.
func (s *NutritionService) CalorieSeries(ctx context.Context, userID string, days int) ([]CaloriePoint, error) {
	if days <= 0 {
		days = 7
	}
	now := time.Now()
	from := now.AddDate(0, 0, -(days - 1))
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())

	entries, err := s.entryRepo.ListByUserAndRange(ctx, userID, start, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list food entries: %w", err)
	}

	totals := make(map[string]float64, days)
	for _, entry := range entries {
		totals[entry.Date.Format("2006-01-02")] += entry.Calories
	}

	series := make([]CaloriePoint, 0, days)
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, CaloriePoint{
			Date:     key,
			Calories: int(math.Round(totals[key])),
		})
	}
	return series, nil
}
