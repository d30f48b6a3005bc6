package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrEntryNotFound = errors.New("food entry not found")
)

// MealType values mirror the meal buckets the app logs against.
const (
	MealBreakfast = "Desayuno"
	MealLunch     = "Almuerzo"
	MealDinner    = "Cena"
	MealSnack     = "Snack"
)

// Macros holds macronutrients in grams.
type Macros struct {
	Protein float64 `json:"protein" bson:"protein"`
	Carbs   float64 `json:"carbs" bson:"carbs"`
	Fats    float64 `json:"fats" bson:"fats"`
}

// FoodEntry is one logged food item.
type FoodEntry struct {
	ID       EntryID   `json:"id" bson:"_id,omitempty"`
	UserID   string    `json:"userId" bson:"user_id"`
	Date     time.Time `json:"date" bson:"date"`
	FoodName string    `json:"foodName" bson:"food_name"`
	Quantity string    `json:"quantity" bson:"quantity"`
	Calories float64   `json:"calories" bson:"calories"`
	Macros   Macros    `json:"macros" bson:"macros"`
	MealType string    `json:"mealType" bson:"meal_type"`
}

type FoodEntryRepository interface {
	Create(ctx context.Context, entry *FoodEntry) error
	// ListByUserAndDay returns entries whose Date falls on the given calendar
	// day, newest first.
	ListByUserAndDay(ctx context.Context, userID string, day time.Time) ([]*FoodEntry, error)
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*FoodEntry, error)
	Update(ctx context.Context, entry *FoodEntry) error
	Delete(ctx context.Context, userID string, id EntryID) error
}
