package handler

import (
	"errors"
	"io"

	"go-portfolio-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// maxCVSize caps CV uploads at 10MB.
const maxCVSize = 10 << 20

type CVHandler struct {
	cvService service.CVService
}

func NewCVHandler(cvService service.CVService) *CVHandler {
	return &CVHandler{cvService: cvService}
}

// GetCV returns the stored CV metadata (no binary)
// GET /api/v1/cv
func (h *CVHandler) GetCV(c *fiber.Ctx) error {
	cv, err := h.cvService.Get()
	if err != nil {
		if errors.Is(err, service.ErrCVNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No CV uploaded"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch CV"})
	}
	return c.JSON(cv)
}

// DownloadCV streams the stored PDF
// GET /api/v1/cv/download
func (h *CVHandler) DownloadCV(c *fiber.Ctx) error {
	data, filename, err := h.cvService.GetBinary()
	if err != nil {
		if errors.Is(err, service.ErrCVNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No CV uploaded"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch CV"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// UploadCV replaces the stored CV atomically
// POST /api/v1/cv
func (h *CVHandler) UploadCV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A 'file' form field is required"})
	}
	if fileHeader.Size > maxCVSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File exceeds the 10MB limit"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}

	cv, err := h.cvService.CreateOrReplace(fileHeader.Filename, data)
	if err != nil {
		// Error detail never includes file contents
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "CV uploaded successfully",
		"data":    cv,
	})
}

// DeleteCV removes the stored CV
// DELETE /api/v1/cv
func (h *CVHandler) DeleteCV(c *fiber.Ctx) error {
	deleted, err := h.cvService.Delete()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete CV"})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No CV uploaded"})
	}
	return c.JSON(fiber.Map{"message": "CV deleted successfully"})
}

// CVExists reports whether a CV is stored
// GET /api/v1/cv/exists
func (h *CVHandler) CVExists(c *fiber.Ctx) error {
	exists, err := h.cvService.Exists()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check CV"})
	}
	return c.JSON(fiber.Map{"exists": exists})
}
