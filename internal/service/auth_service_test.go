package service

import (
	"testing"

	"go-portfolio-api/internal/authz"
	"go-portfolio-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	svc := NewAuthService(userRepo)

	editor := seedUser(t, db, "editor@example.com", authz.RoleEditor)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login("editor@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, editor.ID, resp.User.ID)
		assert.ElementsMatch(t, authz.PermissionCodes(authz.RoleEditor), resp.User.Permissions)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("editor@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login("ghost@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		require.NoError(t, db.Model(editor).Update("is_active", false).Error)
		defer db.Model(editor).Update("is_active", true)

		_, err := svc.Login("editor@example.com", "password123")
		assert.ErrorIs(t, err, ErrUserInactive)
	})
}

func TestValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	svc := NewAuthService(userRepo)

	editor := seedUser(t, db, "editor@example.com", authz.RoleEditor)

	resp, err := svc.Login("editor@example.com", "password123")
	require.NoError(t, err)

	t.Run("valid token resolves the account", func(t *testing.T) {
		user, err := svc.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, editor.ID, user.ID)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("deactivation revokes valid tokens", func(t *testing.T) {
		require.NoError(t, db.Model(editor).Update("is_active", false).Error)

		_, err := svc.ValidateToken(resp.Token)
		assert.ErrorIs(t, err, ErrUserInactive)
	})
}
