package service

import (
	"strings"
	"testing"

	"go-portfolio-api/internal/authz"
	"go-portfolio-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticResponder struct {
	reply string
}

func (r staticResponder) Reply(*ChatRequest) (string, error) { return r.reply, nil }

func TestChat(t *testing.T) {
	svc := NewChatbotService(staticResponder{reply: "hello"})

	t.Run("delegates to the responder", func(t *testing.T) {
		resp, err := svc.Chat(&ChatRequest{Message: "hi", SessionID: "abc"})
		require.NoError(t, err)
		assert.Equal(t, "hello", resp.Reply)
		assert.Equal(t, "abc", resp.SessionID)
	})

	t.Run("blank message", func(t *testing.T) {
		_, err := svc.Chat(&ChatRequest{Message: "   "})
		assert.ErrorIs(t, err, ErrMessageEmpty)
	})

	t.Run("oversized message", func(t *testing.T) {
		_, err := svc.Chat(&ChatRequest{Message: strings.Repeat("a", 1001)})
		assert.ErrorIs(t, err, ErrMessageTooLong)
	})

	t.Run("message at the limit is fine", func(t *testing.T) {
		_, err := svc.Chat(&ChatRequest{Message: strings.Repeat("a", 1000)})
		assert.NoError(t, err)
	})
}

func TestFAQResponder(t *testing.T) {
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)
	owner := seedUser(t, db, "admin@example.com", authz.RoleAdmin)

	projectSvc := NewProjectService(projectRepo, nil)
	_, err := projectSvc.CreateProject(&CreateProjectRequest{Title: "Chess Engine", Description: "x"}, owner)
	require.NoError(t, err)

	svc := NewChatbotService(NewFAQResponder(projectRepo, settingsRepo))

	t.Run("lists published projects", func(t *testing.T) {
		resp, err := svc.Chat(&ChatRequest{Message: "What projects have you built?"})
		require.NoError(t, err)
		assert.Contains(t, resp.Reply, "Chess Engine")
	})

	t.Run("points to the CV download", func(t *testing.T) {
		resp, err := svc.Chat(&ChatRequest{Message: "Can I see your resume?"})
		require.NoError(t, err)
		assert.Contains(t, resp.Reply, "/api/v1/cv/download")
	})

	t.Run("falls back on unrelated questions", func(t *testing.T) {
		resp, err := svc.Chat(&ChatRequest{Message: "What's the weather like?"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Reply)
	})
}
