package service

import (
	"context"
	"testing"

	"github.com/maxgads/gymmax/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileGetCreatesDefaults(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.Create(context.Background(), &domain.User{FirebaseUID: "fb", Name: "Max"}))

	svc := NewProfileService(profileRepo, userRepo)
	profile, err := svc.Get(context.Background(), "user-fb")
	require.NoError(t, err)

	assert.Equal(t, "Max", profile.DisplayName)
	assert.Equal(t, 2000, profile.CalorieGoal)
	assert.Equal(t, domain.ThemeDark, profile.Theme)
	assert.Equal(t, 7, profile.SummaryWindowDays)

	// Default must be persisted, not just synthesized.
	stored, err := profileRepo.Get(context.Background(), "user-fb")
	require.NoError(t, err)
	assert.Equal(t, 2000, stored.CalorieGoal)
}

func TestProfileSaveMergesFields(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), newFakeUserRepo())

	saved, err := svc.Save(context.Background(), "u1", &domain.UserProfile{
		CalorieGoal: 2400,
		Weight:      "82",
	})
	require.NoError(t, err)
	assert.Equal(t, 2400, saved.CalorieGoal)
	assert.Equal(t, "82", saved.Weight)
	assert.Equal(t, domain.ThemeDark, saved.Theme, "unset fields keep defaults")

	// A later partial save must not wipe what was set before.
	saved, err = svc.Save(context.Background(), "u1", &domain.UserProfile{Theme: domain.ThemeLight})
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, saved.Theme)
	assert.Equal(t, 2400, saved.CalorieGoal)
	assert.Equal(t, "82", saved.Weight)
}

func TestProfileSaveRejectsUnknownTheme(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), newFakeUserRepo())

	saved, err := svc.Save(context.Background(), "u1", &domain.UserProfile{Theme: "sepia"})
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, saved.Theme)
}
