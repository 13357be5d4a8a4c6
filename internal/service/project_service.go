package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"
	"go-portfolio-api/internal/ws"
	"go-portfolio-api/pkg/validator"

	"github.com/google/uuid"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectService interface {
	CreateProject(req *CreateProjectRequest, owner *model.User) (*model.Project, error)
	UpdateProject(id uuid.UUID, req *UpdateProjectRequest, editor *model.User) (*model.Project, error)
	DeleteProject(id uuid.UUID) error
	GetProjectByID(id uuid.UUID, includeUnpublished bool) (*model.Project, error)
	GetProjectBySlug(slug string, includeUnpublished bool) (*model.Project, error)
	GetProjects(includeUnpublished bool) ([]model.Project, error)
	GetFeaturedProjects(limit int) ([]model.Project, error)
	IncrementViewCount(id uuid.UUID) error
	GetStats() (*repository.ProjectStats, error)
}

type CreateProjectRequest struct {
	Title            string         `json:"title" validate:"required"`
	Description      string         `json:"description" validate:"required"`
	ShortDescription string         `json:"short_description"`
	Content          string         `json:"content"`
	GithubURL        string         `json:"github_url"`
	ThumbnailURL     string         `json:"thumbnail_url"`
	Technologies     model.JSONList `json:"technologies"`
	Tags             model.JSONList `json:"tags"`
	IsFeatured       bool           `json:"is_featured"`
	IsPublished      *bool          `json:"is_published"`
	OrderIndex       int            `json:"order_index"`
}

type UpdateProjectRequest struct {
	Title              *string         `json:"title,omitempty"`
	Description        *string         `json:"description,omitempty"`
	ShortDescription   *string         `json:"short_description,omitempty"`
	Content            *string         `json:"content,omitempty"`
	GithubURL          *string         `json:"github_url,omitempty"`
	ThumbnailURL       *string         `json:"thumbnail_url,omitempty"`
	DemoVideoType      *string         `json:"demo_video_type,omitempty"`
	DemoVideoURL       *string         `json:"demo_video_url,omitempty"`
	DemoVideoThumbnail *string         `json:"demo_video_thumbnail,omitempty"`
	DemoImages         *model.JSONList `json:"demo_images,omitempty"`
	Technologies       *model.JSONList `json:"technologies,omitempty"`
	Tags               *model.JSONList `json:"tags,omitempty"`
	IsFeatured         *bool           `json:"is_featured,omitempty"`
	IsPublished        *bool           `json:"is_published,omitempty"`
	OrderIndex         *int            `json:"order_index,omitempty"`
}

type projectService struct {
	projectRepo repository.ProjectRepository
	wsHub       *ws.Hub
}

func NewProjectService(projectRepo repository.ProjectRepository, hub *ws.Hub) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		wsHub:       hub,
	}
}

func (s *projectService) CreateProject(req *CreateProjectRequest, owner *model.User) (*model.Project, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.AsError(errs)
	}

	slug, err := s.generateUniqueSlug(slugify(req.Title))
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		Title:            req.Title,
		Slug:             slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		GithubURL:        req.GithubURL,
		ThumbnailURL:     req.ThumbnailURL,
		Technologies:     req.Technologies,
		Tags:             req.Tags,
		IsFeatured:       req.IsFeatured,
		IsPublished:      true,
		OrderIndex:       req.OrderIndex,
		OwnerID:          owner.ID,
	}
	if req.IsPublished != nil {
		project.IsPublished = *req.IsPublished
	}
	if project.Technologies == nil {
		project.Technologies = model.JSONList{}
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}

	s.wsHub.Publish("project_created", map[string]interface{}{
		"id": project.ID, "title": project.Title, "slug": project.Slug,
	}, owner.Name)
	return project, nil
}

func (s *projectService) UpdateProject(id uuid.UUID, req *UpdateProjectRequest, editor *model.User) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	if req.Title != nil && *req.Title != project.Title {
		project.Title = *req.Title
		slug, err := s.generateUniqueSlug(slugify(*req.Title))
		if err != nil {
			return nil, err
		}
		project.Slug = slug
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ShortDescription != nil {
		project.ShortDescription = *req.ShortDescription
	}
	if req.Content != nil {
		project.Content = *req.Content
	}
	if req.GithubURL != nil {
		project.GithubURL = *req.GithubURL
	}
	if req.ThumbnailURL != nil {
		project.ThumbnailURL = *req.ThumbnailURL
	}
	if req.DemoVideoType != nil {
		project.DemoVideoType = *req.DemoVideoType
	}
	if req.DemoVideoURL != nil {
		project.DemoVideoURL = *req.DemoVideoURL
	}
	if req.DemoVideoThumbnail != nil {
		project.DemoVideoThumbnail = *req.DemoVideoThumbnail
	}
	if req.DemoImages != nil {
		project.DemoImages = *req.DemoImages
	}
	if req.Technologies != nil {
		project.Technologies = *req.Technologies
	}
	if req.Tags != nil {
		project.Tags = *req.Tags
	}
	if req.IsFeatured != nil {
		project.IsFeatured = *req.IsFeatured
	}
	if req.IsPublished != nil {
		project.IsPublished = *req.IsPublished
	}
	if req.OrderIndex != nil {
		project.OrderIndex = *req.OrderIndex
	}

	if err := s.projectRepo.Save(project); err != nil {
		return nil, err
	}

	actor := ""
	if editor != nil {
		actor = editor.Name
	}
	s.wsHub.Publish("project_updated", map[string]interface{}{
		"id": project.ID, "title": project.Title, "slug": project.Slug,
	}, actor)
	return project, nil
}

func (s *projectService) DeleteProject(id uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		return ErrProjectNotFound
	}
	if err := s.projectRepo.Delete(id); err != nil {
		return err
	}
	s.wsHub.Publish("project_deleted", map[string]interface{}{"id": id}, "")
	return nil
}

func (s *projectService) GetProjectByID(id uuid.UUID, includeUnpublished bool) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	if !project.IsPublished && !includeUnpublished {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (s *projectService) GetProjectBySlug(slug string, includeUnpublished bool) (*model.Project, error) {
	project, err := s.projectRepo.FindBySlug(slug)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	if !project.IsPublished && !includeUnpublished {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (s *projectService) GetProjects(includeUnpublished bool) ([]model.Project, error) {
	return s.projectRepo.FindAll(includeUnpublished)
}

func (s *projectService) GetFeaturedProjects(limit int) ([]model.Project, error) {
	if limit <= 0 {
		limit = 6
	}
	return s.projectRepo.FindFeatured(limit)
}

func (s *projectService) IncrementViewCount(id uuid.UUID) error {
	return s.projectRepo.IncrementViewCount(id)
}

func (s *projectService) GetStats() (*repository.ProjectStats, error) {
	return s.projectRepo.Stats()
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalid.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "project"
	}
	return slug
}

// generateUniqueSlug appends a numeric suffix until the slug is free.
func (s *projectService) generateUniqueSlug(base string) (string, error) {
	slug := base
	for i := 1; ; i++ {
		exists, err := s.projectRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
