package handler

import (
	"errors"

	"go-portfolio-api/internal/service"
	"go-portfolio-api/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
)

type ChatbotHandler struct {
	chatbotService service.ChatbotService
	limiter        *ratelimit.Limiter
}

func NewChatbotHandler(chatbotService service.ChatbotService, limiter *ratelimit.Limiter) *ChatbotHandler {
	return &ChatbotHandler{chatbotService: chatbotService, limiter: limiter}
}

// Chat answers a visitor message
// POST /api/v1/chatbot/chat
func (h *ChatbotHandler) Chat(c *fiber.Ctx) error {
	var req service.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	response, err := h.chatbotService.Chat(&req)
	if err != nil {
		if errors.Is(err, service.ErrMessageEmpty) || errors.Is(err, service.ErrMessageTooLong) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate reply"})
	}

	return c.JSON(response)
}

// Info describes the chatbot and its request budget
// GET /api/v1/chatbot/info
func (h *ChatbotHandler) Info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":           "Portfolio Assistant",
		"description":    "Answers questions about the portfolio: projects, CV and contact details.",
		"max_message":    1000,
		"rate_limit":     h.limiter.MaxRequests(),
		"window_seconds": int(h.limiter.Window().Seconds()),
	})
}
