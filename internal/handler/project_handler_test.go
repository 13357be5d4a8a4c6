package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"go-portfolio-api/internal/authz"
	"go-portfolio-api/internal/middleware"
	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"
	"go-portfolio-api/internal/service"
	"go-portfolio-api/pkg/jwt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newProjectTestApp wires the public project routes the way cmd/api
// does: OptionalAuth in front, no mandatory authentication.
func newProjectTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Project{}))

	userRepo := repository.NewUserRepo(db)
	projectHandler := NewProjectHandler(service.NewProjectService(repository.NewProjectRepo(db), nil))

	app := fiber.New()
	projects := app.Group("/projects", middleware.OptionalAuth(userRepo))
	projects.Get("/", projectHandler.GetProjects)
	projects.Get("/slug/:slug", projectHandler.GetProjectBySlug)
	return app, db
}

func tokenFor(t *testing.T, db *gorm.DB, email string, role authz.Role) string {
	t.Helper()
	user := &model.User{
		Email:    email,
		Name:     email,
		UserRole: role,
		IsActive: true,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, string(role))
	require.NoError(t, err)
	return token
}

func listProjects(t *testing.T, app *fiber.App, path, token string) []model.Project {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var projects []model.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&projects))
	return projects
}

func TestProjectDraftVisibility(t *testing.T) {
	app, db := newProjectTestApp(t)
	adminToken := tokenFor(t, db, "admin@example.com", authz.RoleAdmin)
	viewerToken := tokenFor(t, db, "viewer@example.com", authz.RoleViewer)

	require.NoError(t, db.Create(&model.Project{
		Title:       "Draft",
		Slug:        "draft",
		Description: "x",
		IsPublished: false,
	}).Error)
	require.NoError(t, db.Create(&model.Project{
		Title:       "Public",
		Slug:        "public",
		Description: "x",
		IsPublished: true,
	}).Error)

	t.Run("anonymous listing excludes drafts", func(t *testing.T) {
		projects := listProjects(t, app, "/projects?include_unpublished=true", "")
		require.Len(t, projects, 1)
		assert.Equal(t, "Public", projects[0].Title)
	})

	t.Run("admin token unlocks drafts on the public route", func(t *testing.T) {
		projects := listProjects(t, app, "/projects?include_unpublished=true", adminToken)
		assert.Len(t, projects, 2)
	})

	t.Run("admin token without the flag still lists published only", func(t *testing.T) {
		projects := listProjects(t, app, "/projects", adminToken)
		assert.Len(t, projects, 1)
	})

	t.Run("non-admin roles never see drafts", func(t *testing.T) {
		projects := listProjects(t, app, "/projects?include_unpublished=true", viewerToken)
		assert.Len(t, projects, 1)
	})

	t.Run("draft detail by slug", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/projects/slug/draft", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		req = httptest.NewRequest("GET", "/projects/slug/draft", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, err = app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
