package service

import (
	"context"
	"fmt"

	"github.com/maxgads/gymmax/internal/domain"
)

type ProfileService struct {
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
}

func NewProfileService(profileRepo domain.ProfileRepository, userRepo domain.UserRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Get returns the user's profile, creating a default one on first read so
// callers always see a complete document.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err == nil {
		applyDefaults(profile)
		return profile, nil
	}
	if err != domain.ErrNotFound {
		return nil, err
	}

	displayName := ""
	if user, uerr := s.userRepo.GetByID(ctx, userID); uerr == nil {
		displayName = user.Name
	}

	profile = domain.DefaultProfile(userID, displayName)
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create default profile: %w", err)
	}
	return profile, nil
}

// Save merges the submitted fields over the stored profile. Empty fields in
// the request leave the stored values untouched.
func (s *ProfileService) Save(ctx context.Context, userID string, update *domain.UserProfile) (*domain.UserProfile, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.DisplayName != "" {
		current.DisplayName = update.DisplayName
	}
	if update.Height != "" {
		current.Height = update.Height
	}
	if update.Weight != "" {
		current.Weight = update.Weight
	}
	if update.CalorieGoal > 0 {
		current.CalorieGoal = update.CalorieGoal
	}
	if update.Theme == domain.ThemeLight || update.Theme == domain.ThemeDark {
		current.Theme = update.Theme
	}
	if update.SummaryWindowDays > 0 {
		current.SummaryWindowDays = update.SummaryWindowDays
	}

	if err := s.profileRepo.Upsert(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return current, nil
}

// applyDefaults fills gaps in profiles written by older clients.
func applyDefaults(profile *domain.UserProfile) {
	if profile.CalorieGoal == 0 {
		profile.CalorieGoal = 2000
	}
	if profile.Theme == "" {
		profile.Theme = domain.ThemeDark
	}
	if profile.SummaryWindowDays == 0 {
		profile.SummaryWindowDays = 7
	}
}
