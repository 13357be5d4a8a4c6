package handler

import (
	"errors"
	"log"

	"go-portfolio-api/internal/authz"
	"go-portfolio-api/internal/middleware"
	"go-portfolio-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// canSeeDrafts reports whether the resolved principal may view
// unpublished projects. The public project routes run OptionalAuth, so
// an admin bearer token unlocks drafts on the same endpoints.
func canSeeDrafts(c *fiber.Ctx) bool {
	user := middleware.CurrentUser(c)
	return user != nil && authz.IsAdminTier(user.Role())
}

// GetProjects lists published projects; admins can include drafts
// GET /api/v1/projects?include_unpublished=false
func (h *ProjectHandler) GetProjects(c *fiber.Ctx) error {
	includeUnpublished := c.QueryBool("include_unpublished", false) && canSeeDrafts(c)

	projects, err := h.projectService.GetProjects(includeUnpublished)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch projects"})
	}
	return c.JSON(projects)
}

// GetFeaturedProjects lists the featured projects
// GET /api/v1/projects/featured?limit=6
func (h *ProjectHandler) GetFeaturedProjects(c *fiber.Ctx) error {
	projects, err := h.projectService.GetFeaturedProjects(c.QueryInt("limit", 6))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch projects"})
	}
	return c.JSON(projects)
}

// GetProject returns one project by ID
// GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	project, err := h.projectService.GetProjectByID(projectID, canSeeDrafts(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}
	return c.JSON(project)
}

// GetProjectBySlug returns one published project by slug and counts the view
// GET /api/v1/projects/slug/:slug
func (h *ProjectHandler) GetProjectBySlug(c *fiber.Ctx) error {
	project, err := h.projectService.GetProjectBySlug(c.Params("slug"), canSeeDrafts(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	if err := h.projectService.IncrementViewCount(project.ID); err != nil {
		log.Printf("Failed to increment view count for project %s: %v", project.ID, err)
	}
	return c.JSON(project)
}

// CreateProject handles project creation
// POST /api/v1/projects
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req service.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	project, err := h.projectService.CreateProject(&req, middleware.CurrentUser(c))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Project created successfully",
		"data":    project,
	})
}

// UpdateProject handles project update
// PUT /api/v1/projects/:id
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var req service.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	project, err := h.projectService.UpdateProject(projectID, &req, middleware.CurrentUser(c))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Project updated successfully",
		"data":    project,
	})
}

// DeleteProject handles project deletion
// DELETE /api/v1/projects/:id
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	if err := h.projectService.DeleteProject(projectID); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete project"})
	}

	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}
