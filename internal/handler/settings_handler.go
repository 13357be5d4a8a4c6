package handler

import (
	"go-portfolio-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the site settings, creating defaults on first call
// GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.GetOrCreate()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}
	return c.JSON(settings)
}

// UpdateSettings applies a partial patch to the site settings
// PUT /api/v1/settings
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req service.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	settings, err := h.settingsService.Update(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Settings updated successfully",
		"data":    settings,
	})
}

// ResetSettings restores the default site settings
// POST /api/v1/settings/reset
func (h *SettingsHandler) ResetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.ResetToDefaults()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reset settings"})
	}

	return c.JSON(fiber.Map{
		"message": "Settings reset to defaults",
		"data":    settings,
	})
}
