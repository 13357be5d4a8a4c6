package handler

import (
	"errors"

	"go-portfolio-api/internal/middleware"
	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CMSHandler struct {
	cmsService service.CMSService
}

func NewCMSHandler(cmsService service.CMSService) *CMSHandler {
	return &CMSHandler{cmsService: cmsService}
}

func cmsErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrSectionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrSectionExists):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrSectionLocked):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrInvalidDirection), errors.Is(err, service.ErrReorderOutOfRange):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusBadRequest
	}
}

// GetPagePublic returns the active sections of a page for the public site
// GET /api/v1/cms/pages/:page/public
func (h *CMSHandler) GetPagePublic(c *fiber.Ctx) error {
	pageKey := c.Params("page")
	sections, err := h.cmsService.ListSections(pageKey, true)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch page"})
	}
	if len(sections) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Page not found or has no content"})
	}

	public := make([]model.SectionPublic, len(sections))
	for i := range sections {
		public[i] = sections[i].ToPublic()
	}
	return c.JSON(fiber.Map{"page_key": pageKey, "sections": public})
}

// GetSections lists a page's sections for the admin UI
// GET /api/v1/cms/pages/:page/sections?active_only=false
func (h *CMSHandler) GetSections(c *fiber.Ctx) error {
	sections, err := h.cmsService.ListSections(c.Params("page"), c.QueryBool("active_only", false))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch sections"})
	}
	return c.JSON(sections)
}

// GetAllSections lists every section across pages for the admin UI
// GET /api/v1/cms/sections?active_only=false
func (h *CMSHandler) GetAllSections(c *fiber.Ctx) error {
	sections, err := h.cmsService.ListAllSections(c.QueryBool("active_only", false))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch sections"})
	}
	return c.JSON(sections)
}

// GetSection returns one section
// GET /api/v1/cms/sections/:page/:section
func (h *CMSHandler) GetSection(c *fiber.Ctx) error {
	section, err := h.cmsService.GetSection(c.Params("page"), c.Params("section"))
	if err != nil {
		return c.Status(cmsErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(section)
}

// CreateSection creates a new section
// POST /api/v1/cms/sections
func (h *CMSHandler) CreateSection(c *fiber.Ctx) error {
	var req service.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	section, err := h.cmsService.CreateSection(&req, editorID(c))
	if err != nil {
		return c.Status(cmsErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Section created successfully",
		"data":    section,
	})
}

// UpdateSection applies a partial patch to a section
// PUT /api/v1/cms/sections/:page/:section
func (h *CMSHandler) UpdateSection(c *fiber.Ctx) error {
	var req service.UpdateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	section, err := h.cmsService.UpdateSection(c.Params("page"), c.Params("section"), &req, editorID(c))
	if err != nil {
		return c.Status(cmsErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Section updated successfully",
		"data":    section,
	})
}

// DeleteSection removes a section
// DELETE /api/v1/cms/sections/:page/:section
func (h *CMSHandler) DeleteSection(c *fiber.Ctx) error {
	if err := h.cmsService.DeleteSection(c.Params("page"), c.Params("section")); err != nil {
		return c.Status(cmsErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Section deleted successfully"})
}

// ReorderRequest carries the reorder direction
type ReorderRequest struct {
	Direction string `json:"direction"`
}

// ReorderSection moves a section up or down within its page
// PATCH /api/v1/cms/sections/:page/:section/reorder
func (h *CMSHandler) ReorderSection(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	section, err := h.cmsService.ReorderSection(c.Params("page"), c.Params("section"), req.Direction)
	if err != nil {
		return c.Status(cmsErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Section reordered successfully",
		"data":    section,
	})
}

// SeedDefaults inserts the default content, skipping existing sections
// POST /api/v1/cms/seed
func (h *CMSHandler) SeedDefaults(c *fiber.Ctx) error {
	created, err := h.cmsService.SeedDefaults(service.DefaultSections)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"message": "Default content seeded",
		"created": created,
	})
}

// GetPages returns the page catalog with section counts
// GET /api/v1/cms/pages
func (h *CMSHandler) GetPages(c *fiber.Ctx) error {
	pages, err := h.cmsService.GetAvailablePages()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pages"})
	}
	return c.JSON(pages)
}

// GetStats returns CMS counters
// GET /api/v1/cms/stats
func (h *CMSHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.cmsService.GetStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}
	return c.JSON(stats)
}

func editorID(c *fiber.Ctx) uuid.UUID {
	if user := middleware.CurrentUser(c); user != nil {
		return user.ID
	}
	return uuid.Nil
}
