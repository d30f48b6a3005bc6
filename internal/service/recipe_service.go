package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maxgads/gymmax/internal/domain"
)

var ErrEmptyIngredients = errors.New("at least one ingredient is required")

const (
	chefSystemPrompt = `You are a pragmatic fitness chef. You build simple, high-protein recipes from whatever the user has on hand. Answer in the language the ingredients are written in. Return only valid JSON.`

	analyzerSystemPrompt = `You are a nutritionist analyzing meal photos. Estimate portions conservatively and say when you are unsure. Answer in Spanish unless the photo labels suggest otherwise. Return only valid JSON.`

	recipeJSONShape = `{
  "recipeName": "",
  "description": "",
  "ingredients": [""],
  "steps": [""],
  "calories": "e.g. 450-550 kcal",
  "protein": "e.g. 35g",
  "carbs": "e.g. 40g",
  "fats": "e.g. 15g",
  "feedback": "",
  "disclaimer": ""
}`
)

// RecipePreferences narrows what the chef may propose.
type RecipePreferences struct {
	Ingredients []string `json:"ingredients"`
	Goal        string   `json:"goal,omitempty"`     // e.g. "cut", "bulk"
	MealType    string   `json:"mealType,omitempty"` // one of the meal buckets
	Exclusions  []string `json:"exclusions,omitempty"`
}

// RecipeService generates recipes and meal analyses through OpenRouter and
// keeps the user's saved recipe book.
type RecipeService struct {
	ai         *OpenRouterClient
	recipeRepo domain.RecipeRepository
	fileRepo   domain.FileRepository
}

func NewRecipeService(ai *OpenRouterClient, recipeRepo domain.RecipeRepository, fileRepo domain.FileRepository) *RecipeService {
	return &RecipeService{
		ai:         ai,
		recipeRepo: recipeRepo,
		fileRepo:   fileRepo,
	}
}

// Generate asks the model for one recipe matching the preferences.
func (s *RecipeService) Generate(ctx context.Context, prefs RecipePreferences) (*domain.Recipe, error) {
	if len(prefs.Ingredients) == 0 {
		return nil, ErrEmptyIngredients
	}

	prompt := fmt.Sprintf(`Create ONE recipe using mainly these ingredients: %v.`, prefs.Ingredients)
	if prefs.Goal != "" {
		prompt += fmt.Sprintf(" The user's goal is: %s.", prefs.Goal)
	}
	if prefs.MealType != "" {
		prompt += fmt.Sprintf(" It is for: %s.", prefs.MealType)
	}
	if len(prefs.Exclusions) > 0 {
		prompt += fmt.Sprintf(" Never use: %v.", prefs.Exclusions)
	}
	prompt += "\n\nReturn ONLY valid JSON in this EXACT format:\n" + recipeJSONShape

	content, err := s.ai.Complete(ctx, chefSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("recipe generation failed: %w", err)
	}

	var recipe domain.Recipe
	if err := decodeModelJSON(content, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// AnalyzeMealPhoto uploads the photo, asks the vision model for an estimate
// and returns the verdict with the stored photo URL attached.
func (s *RecipeService) AnalyzeMealPhoto(ctx context.Context, userID string, imageData []byte) (*domain.MealAnalysis, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("empty image")
	}

	prompt := `Analyze this meal photo. Identify the dish and its main components, estimate portion sizes, and give honest feedback on how it fits a training diet.

Return ONLY valid JSON in this EXACT format:
` + recipeJSONShape

	content, err := s.ai.CompleteWithImage(ctx, analyzerSystemPrompt, prompt, imageData)
	if err != nil {
		return nil, fmt.Errorf("meal analysis failed: %w", err)
	}

	var analysis domain.MealAnalysis
	if err := decodeModelJSON(content, &analysis); err != nil {
		return nil, err
	}

	if s.fileRepo != nil {
		filename := fmt.Sprintf("meals/%s/%s.%s", userID, newULID(), imageExtension(imageData))
		url, uploadErr := s.fileRepo.Upload(ctx, imageData, filename, detectImageType(imageData))
		if uploadErr == nil {
			analysis.PhotoURL = url
		}
		// Analysis still succeeds when storage is down; the photo is a nicety.
	}
	return &analysis, nil
}

// Save stores a generated recipe in the user's recipe book.
func (s *RecipeService) Save(ctx context.Context, userID string, recipe *domain.Recipe) (*domain.SavedRecipe, error) {
	if recipe.RecipeName == "" {
		return nil, fmt.Errorf("recipe must have a name")
	}
	saved := &domain.SavedRecipe{
		Recipe:    *recipe,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.recipeRepo.Create(ctx, saved); err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}
	return saved, nil
}

func (s *RecipeService) List(ctx context.Context, userID string) ([]*domain.SavedRecipe, error) {
	return s.recipeRepo.ListByUser(ctx, userID)
}

func (s *RecipeService) Delete(ctx context.Context, userID string, id domain.RecipeID) error {
	return s.recipeRepo.Delete(ctx, userID, id)
}

func imageExtension(data []byte) string {
	switch detectImageType(data) {
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	default:
		return "jpg"
	}
}
