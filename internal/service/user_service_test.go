package service

import (
	"testing"

	"go-portfolio-api/internal/authz"
	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(repository.NewUserRepo(db)), db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role authz.Role) *model.User {
	t.Helper()
	user := &model.User{
		Email:    email,
		Name:     email,
		UserRole: role,
		IsActive: true,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCreateUser(t *testing.T) {
	t.Run("admin creates an editor", func(t *testing.T) {
		svc, db := newUserService(t)
		admin := seedUser(t, db, "admin@example.com", authz.RoleAdmin)

		user, err := svc.CreateUser(&CreateUserRequest{
			Email:    "editor@example.com",
			Password: "password123",
			Name:     "Editor",
			Role:     authz.RoleEditor,
		}, admin)
		require.NoError(t, err)
		assert.Equal(t, authz.RoleEditor, user.UserRole)
		assert.True(t, user.IsActive)
		assert.True(t, user.CheckPassword("password123"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, db := newUserService(t)
		admin := seedUser(t, db, "admin@example.com", authz.RoleAdmin)

		_, err := svc.CreateUser(&CreateUserRequest{
			Email:    "admin@example.com",
			Password: "password123",
			Name:     "Duplicate",
			Role:     authz.RoleViewer,
		}, admin)
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc, db := newUserService(t)
		admin := seedUser(t, db, "admin@example.com", authz.RoleAdmin)

		_, err := svc.CreateUser(&CreateUserRequest{
			Email:    "x@example.com",
			Password: "password123",
			Name:     "X",
			Role:     authz.Role("owner"),
		}, admin)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("only super admins create super admins", func(t *testing.T) {
		svc, db := newUserService(t)
		admin := seedUser(t, db, "admin@example.com", authz.RoleAdmin)
		super := seedUser(t, db, "super@example.com", authz.RoleSuperAdmin)

		req := &CreateUserRequest{
			Email:    "new-super@example.com",
			Password: "password123",
			Name:     "New Super",
			Role:     authz.RoleSuperAdmin,
		}
		_, err := svc.CreateUser(req, admin)
		assert.ErrorIs(t, err, authz.ErrForbidden)

		_, err = svc.CreateUser(req, super)
		assert.NoError(t, err)
	})

	t.Run("editors cannot create admins", func(t *testing.T) {
		svc, db := newUserService(t)
		editor := seedUser(t, db, "editor@example.com", authz.RoleEditor)

		_, err := svc.CreateUser(&CreateUserRequest{
			Email:    "new-admin@example.com",
			Password: "password123",
			Name:     "New Admin",
			Role:     authz.RoleAdmin,
		}, editor)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("no one changes their own role", func(t *testing.T) {
		svc, db := newUserService(t)
		super := seedUser(t, db, "super@example.com", authz.RoleSuperAdmin)

		role := authz.RoleAdmin
		_, err := svc.UpdateUser(super.ID, &UpdateUserRequest{Role: &role}, super)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})

	t.Run("only super admins touch super admin accounts", func(t *testing.T) {
		svc, db := newUserService(t)
		admin := seedUser(t, db, "admin@example.com", authz.RoleAdmin)
		super := seedUser(t, db, "super@example.com", authz.RoleSuperAdmin)

		name := "Renamed"
		_, err := svc.UpdateUser(super.ID, &UpdateUserRequest{Name: &name}, admin)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})

	t.Run("admins cannot grant super admin", func(t *testing.T) {
		svc, db := newUserService(t)
		admin := seedUser(t, db, "admin@example.com", authz.RoleAdmin)
		editor := seedUser(t, db, "editor@example.com", authz.RoleEditor)

		role := authz.RoleSuperAdmin
		_, err := svc.UpdateUser(editor.ID, &UpdateUserRequest{Role: &role}, admin)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})

	t.Run("partial patch keeps other fields", func(t *testing.T) {
		svc, db := newUserService(t)
		admin := seedUser(t, db, "admin@example.com", authz.RoleAdmin)
		editor := seedUser(t, db, "editor@example.com", authz.RoleEditor)

		bio := "Writes things"
		updated, err := svc.UpdateUser(editor.ID, &UpdateUserRequest{Bio: &bio}, admin)
		require.NoError(t, err)
		assert.Equal(t, "Writes things", updated.Bio)
		assert.Equal(t, "editor@example.com", updated.Email)
		assert.Equal(t, authz.RoleEditor, updated.UserRole)
	})

	t.Run("email change collides with an existing account", func(t *testing.T) {
		svc, db := newUserService(t)
		admin := seedUser(t, db, "admin@example.com", authz.RoleAdmin)
		editor := seedUser(t, db, "editor@example.com", authz.RoleEditor)

		email := "admin@example.com"
		_, err := svc.UpdateUser(editor.ID, &UpdateUserRequest{Email: &email}, admin)
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("self deletion is always forbidden", func(t *testing.T) {
		svc, db := newUserService(t)
		super := seedUser(t, db, "super@example.com", authz.RoleSuperAdmin)

		err := svc.DeleteUser(super.ID, super)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})

	t.Run("super admin accounts are undeletable by anyone", func(t *testing.T) {
		svc, db := newUserService(t)
		super := seedUser(t, db, "super@example.com", authz.RoleSuperAdmin)
		otherSuper := seedUser(t, db, "super2@example.com", authz.RoleSuperAdmin)

		err := svc.DeleteUser(super.ID, otherSuper)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})

	t.Run("admins cannot delete admins", func(t *testing.T) {
		svc, db := newUserService(t)
		admin := seedUser(t, db, "admin@example.com", authz.RoleAdmin)
		otherAdmin := seedUser(t, db, "admin2@example.com", authz.RoleAdmin)

		err := svc.DeleteUser(otherAdmin.ID, admin)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})

	t.Run("super admins can delete admins", func(t *testing.T) {
		svc, db := newUserService(t)
		super := seedUser(t, db, "super@example.com", authz.RoleSuperAdmin)
		admin := seedUser(t, db, "admin@example.com", authz.RoleAdmin)

		require.NoError(t, svc.DeleteUser(admin.ID, super))
		_, err := svc.GetUserByID(admin.ID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("admins can delete editors", func(t *testing.T) {
		svc, db := newUserService(t)
		admin := seedUser(t, db, "admin@example.com", authz.RoleAdmin)
		editor := seedUser(t, db, "editor@example.com", authz.RoleEditor)

		require.NoError(t, svc.DeleteUser(editor.ID, admin))
	})
}
