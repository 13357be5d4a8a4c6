package service

import (
	"testing"

	"go-portfolio-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(t *testing.T) SettingsService {
	t.Helper()
	return NewSettingsService(repository.NewSettingsRepo(newTestDB(t)))
}

func TestSettingsGetOrCreate(t *testing.T) {
	svc := newSettingsService(t)

	settings, err := svc.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, "My Portfolio", settings.SiteName)
	assert.Equal(t, "auto", settings.ThemeMode)

	// Second call returns the same row, not a new one
	again, err := svc.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestSettingsUpdate(t *testing.T) {
	t.Run("partial patch", func(t *testing.T) {
		svc := newSettingsService(t)

		name := "Jane's Portfolio"
		email := "jane@example.com"
		updated, err := svc.Update(&UpdateSettingsRequest{
			SiteName:     &name,
			ContactEmail: &email,
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane's Portfolio", updated.SiteName)
		assert.Equal(t, "jane@example.com", updated.ContactEmail)
		assert.Equal(t, "auto", updated.ThemeMode)
	})

	t.Run("maintenance toggle", func(t *testing.T) {
		svc := newSettingsService(t)

		on := true
		message := "Back soon"
		updated, err := svc.Update(&UpdateSettingsRequest{
			MaintenanceMode:    &on,
			MaintenanceMessage: &message,
		})
		require.NoError(t, err)
		assert.True(t, updated.MaintenanceMode)
		assert.Equal(t, "Back soon", updated.MaintenanceMessage)
	})
}

func TestSettingsReset(t *testing.T) {
	svc := newSettingsService(t)

	name := "Customized"
	_, err := svc.Update(&UpdateSettingsRequest{SiteName: &name})
	require.NoError(t, err)

	settings, err := svc.ResetToDefaults()
	require.NoError(t, err)
	assert.Equal(t, "My Portfolio", settings.SiteName)

	fetched, err := svc.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, "My Portfolio", fetched.SiteName)
}
