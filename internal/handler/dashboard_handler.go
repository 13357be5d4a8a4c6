package handler

import (
	"log"

	"go-portfolio-api/internal/repository"
	"go-portfolio-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	cmsService     service.CMSService
	projectService service.ProjectService
	cvService      service.CVService
	userRepo       repository.UserRepository
}

func NewDashboardHandler(
	cmsService service.CMSService,
	projectService service.ProjectService,
	cvService service.CVService,
	userRepo repository.UserRepository,
) *DashboardHandler {
	return &DashboardHandler{
		cmsService:     cmsService,
		projectService: projectService,
		cvService:      cvService,
		userRepo:       userRepo,
	}
}

// GetDashboard aggregates the admin dashboard counters
// GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	cmsStats, err := h.cmsService.GetStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch dashboard data"})
	}

	projectStats, err := h.projectService.GetStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch dashboard data"})
	}

	cvExists, err := h.cvService.Exists()
	if err != nil {
		log.Printf("Failed to check CV existence: %v", err)
	}

	userCount, err := h.userRepo.Count()
	if err != nil {
		log.Printf("Failed to count users: %v", err)
	}

	return c.JSON(fiber.Map{
		"cms":         cmsStats,
		"projects":    projectStats,
		"cv_uploaded": cvExists,
		"users":       userCount,
	})
}
