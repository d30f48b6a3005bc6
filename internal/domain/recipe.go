package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
)

// Recipe is an AI-generated recipe payload. Nutritional figures stay textual
// because the model answers with ranges ("450-550 kcal").
type Recipe struct {
	RecipeName  string   `json:"recipeName" bson:"recipe_name"`
	Description string   `json:"description" bson:"description"`
	Ingredients []string `json:"ingredients" bson:"ingredients"`
	Steps       []string `json:"steps" bson:"steps"`
	Calories    string   `json:"calories" bson:"calories"`
	Protein     string   `json:"protein" bson:"protein"`
	Carbs       string   `json:"carbs" bson:"carbs"`
	Fats        string   `json:"fats" bson:"fats"`
	Feedback    string   `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Disclaimer  string   `json:"disclaimer,omitempty" bson:"disclaimer,omitempty"`
}

// SavedRecipe is a recipe kept in the user's recipe book.
type SavedRecipe struct {
	Recipe    `bson:",inline"`
	ID        RecipeID  `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"user_id"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// MealAnalysis is the structured verdict for an analyzed meal photo.
type MealAnalysis struct {
	Recipe   `bson:",inline"`
	PhotoURL string `json:"photoUrl,omitempty" bson:"photo_url,omitempty"`
}

type RecipeRepository interface {
	Create(ctx context.Context, recipe *SavedRecipe) error
	ListByUser(ctx context.Context, userID string) ([]*SavedRecipe, error)
	Delete(ctx context.Context, userID string, id RecipeID) error
}
