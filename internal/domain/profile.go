package domain

import "context"

// Theme values
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UserProfile holds display preferences and tracking defaults. All fields are
// optional on the wire; DefaultProfile fills the blanks on first read.
type UserProfile struct {
	UserID            string `json:"userId" bson:"_id"`
	DisplayName       string `json:"displayName,omitempty" bson:"display_name,omitempty"`
	Height            string `json:"height,omitempty" bson:"height,omitempty"` // cm
	Weight            string `json:"weight,omitempty" bson:"weight,omitempty"` // kg
	CalorieGoal       int    `json:"calorieGoal" bson:"calorie_goal"`
	Theme             string `json:"theme" bson:"theme"`
	SummaryWindowDays int    `json:"summaryWindowDays" bson:"summary_window_days"`
}

// DefaultProfile returns the profile created for a user on first read.
func DefaultProfile(userID, displayName string) *UserProfile {
	return &UserProfile{
		UserID:            userID,
		DisplayName:       displayName,
		CalorieGoal:       2000,
		Theme:             ThemeDark,
		SummaryWindowDays: 7,
	}
}

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*UserProfile, error)
	// Upsert creates the profile if missing, otherwise overwrites it.
	Upsert(ctx context.Context, profile *UserProfile) error
}
