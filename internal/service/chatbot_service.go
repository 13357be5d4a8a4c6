package service

import (
	"errors"
	"fmt"
	"strings"

	"go-portfolio-api/internal/repository"
)

var (
	ErrMessageEmpty   = errors.New("message must not be empty")
	ErrMessageTooLong = errors.New("message must be at most 1000 characters")
)

const maxChatMessageLen = 1000

type ChatMessage struct {
	Role    string `json:"role"` // user or assistant
	Content string `json:"content"`
}

type ChatRequest struct {
	Message   string        `json:"message"`
	History   []ChatMessage `json:"conversation_history,omitempty"`
	SessionID string        `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponder produces the assistant reply. The real LLM integration
// is an external collaborator behind this interface; the bundled
// implementation answers portfolio FAQs from stored data.
type ChatResponder interface {
	Reply(req *ChatRequest) (string, error)
}

type ChatbotService interface {
	Chat(req *ChatRequest) (*ChatResponse, error)
}

type chatbotService struct {
	responder ChatResponder
}

func NewChatbotService(responder ChatResponder) ChatbotService {
	return &chatbotService{responder: responder}
}

func (s *chatbotService) Chat(req *ChatRequest) (*ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrMessageEmpty
	}
	if len(req.Message) > maxChatMessageLen {
		return nil, ErrMessageTooLong
	}

	reply, err := s.responder.Reply(req)
	if err != nil {
		return nil, err
	}
	return &ChatResponse{Reply: reply, SessionID: req.SessionID}, nil
}

// faqResponder is the default ChatResponder: keyword answers backed by
// the stored projects and site settings.
type faqResponder struct {
	projectRepo  repository.ProjectRepository
	settingsRepo repository.SettingsRepository
}

func NewFAQResponder(projectRepo repository.ProjectRepository, settingsRepo repository.SettingsRepository) ChatResponder {
	return &faqResponder{projectRepo: projectRepo, settingsRepo: settingsRepo}
}

func (r *faqResponder) Reply(req *ChatRequest) (string, error) {
	msg := strings.ToLower(req.Message)

	switch {
	case strings.Contains(msg, "project"):
		projects, err := r.projectRepo.FindAll(false)
		if err != nil || len(projects) == 0 {
			return "You can browse all published projects on the projects page.", nil
		}
		titles := make([]string, 0, len(projects))
		for i := range projects {
			titles = append(titles, projects[i].Title)
			if len(titles) == 5 {
				break
			}
		}
		return fmt.Sprintf("Some of the published projects: %s. See the projects page for details.", strings.Join(titles, ", ")), nil

	case strings.Contains(msg, "cv") || strings.Contains(msg, "resume"):
		return "The CV is available for download at /api/v1/cv/download.", nil

	case strings.Contains(msg, "contact") || strings.Contains(msg, "email") || strings.Contains(msg, "hire"):
		if settings, err := r.settingsRepo.Get(); err == nil && settings.ContactEmail != "" {
			return fmt.Sprintf("You can reach out at %s or through the contact page.", settings.ContactEmail), nil
		}
		return "You can get in touch through the contact page.", nil

	default:
		return "I can help with questions about the portfolio: projects, CV, or how to get in contact.", nil
	}
}
