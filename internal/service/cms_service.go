package service

import (
	"errors"

	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"
	"go-portfolio-api/internal/ws"
	"go-portfolio-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSectionExists     = errors.New("section already exists on this page")
	ErrSectionNotFound   = errors.New("section not found")
	ErrSectionLocked     = errors.New("section is not editable")
	ErrInvalidDirection  = errors.New("direction must be 'up' or 'down'")
	ErrReorderOutOfRange = errors.New("section is already at the boundary")
)

// Reorder directions
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

type CMSService interface {
	GetSection(pageKey, sectionKey string) (*model.Section, error)
	ListSections(pageKey string, activeOnly bool) ([]model.Section, error)
	ListAllSections(activeOnly bool) ([]model.Section, error)
	CreateSection(req *CreateSectionRequest, editor uuid.UUID) (*model.Section, error)
	UpdateSection(pageKey, sectionKey string, req *UpdateSectionRequest, editor uuid.UUID) (*model.Section, error)
	DeleteSection(pageKey, sectionKey string) error
	ReorderSection(pageKey, sectionKey, direction string) (*model.Section, error)
	SeedDefaults(specs []CreateSectionRequest) ([]model.Section, error)
	GetAvailablePages() ([]PageInfo, error)
	GetStats() (*repository.SectionCounts, error)
}

type CreateSectionRequest struct {
	PageKey     string        `json:"page_key" validate:"required"`
	SectionKey  string        `json:"section_key" validate:"required"`
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description"`
	Content     model.JSONMap `json:"content" validate:"required"`
	Styles      model.JSONMap `json:"styles"`
	IsActive    *bool         `json:"is_active"`
	IsEditable  *bool         `json:"is_editable"`
	OrderIndex  int           `json:"order_index"`
}

// UpdateSectionRequest is a partial patch; only non-nil fields are
// applied. Every successful call bumps the version by exactly one no
// matter how many fields changed.
type UpdateSectionRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Content     *model.JSONMap `json:"content,omitempty"`
	Styles      *model.JSONMap `json:"styles,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
	IsEditable  *bool          `json:"is_editable,omitempty"`
	OrderIndex  *int           `json:"order_index,omitempty"`
}

// PageInfo describes one entry of the fixed page catalog plus its
// current section count.
type PageInfo struct {
	PageKey       string `json:"page_key"`
	Label         string `json:"label"`
	Icon          string `json:"icon"`
	Description   string `json:"description"`
	SectionsCount int64  `json:"sections_count"`
}

// pageCatalog is the fixed set of known pages shown in the admin UI.
var pageCatalog = []PageInfo{
	{PageKey: "home", Label: "Home", Icon: "home", Description: "Portfolio landing page"},
	{PageKey: "about", Label: "About", Icon: "user", Description: "Personal and professional info"},
	{PageKey: "projects", Label: "Projects", Icon: "folder", Description: "Project gallery"},
	{PageKey: "contact", Label: "Contact", Icon: "mail", Description: "Contact form"},
}

type cmsService struct {
	sectionRepo repository.SectionRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewCMSService(sectionRepo repository.SectionRepository, db *gorm.DB, hub *ws.Hub) CMSService {
	return &cmsService{
		sectionRepo: sectionRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *cmsService) GetSection(pageKey, sectionKey string) (*model.Section, error) {
	section, err := s.sectionRepo.FindByKey(pageKey, sectionKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return section, nil
}

func (s *cmsService) ListSections(pageKey string, activeOnly bool) ([]model.Section, error) {
	return s.sectionRepo.FindByPage(pageKey, activeOnly)
}

func (s *cmsService) ListAllSections(activeOnly bool) ([]model.Section, error) {
	return s.sectionRepo.FindAll(activeOnly)
}

func (s *cmsService) CreateSection(req *CreateSectionRequest, editor uuid.UUID) (*model.Section, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.AsError(errs)
	}

	// Duplicate natural key check. Only a clean not-found may fall
	// through to the insert; transient DB failures must surface as-is.
	existing, err := s.sectionRepo.FindByKey(req.PageKey, req.SectionKey)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSectionExists
	}

	section := sectionFromSpec(req)
	section.Version = 1
	if editor != uuid.Nil {
		section.LastEditedBy = &editor
	}

	if err := s.sectionRepo.Create(section); err != nil {
		return nil, err
	}

	s.wsHub.Publish("section_created", section.ToPublic(), editor.String())
	return section, nil
}

func (s *cmsService) UpdateSection(pageKey, sectionKey string, req *UpdateSectionRequest, editor uuid.UUID) (*model.Section, error) {
	section, err := s.GetSection(pageKey, sectionKey)
	if err != nil {
		return nil, err
	}

	if !section.IsEditable {
		return nil, ErrSectionLocked
	}

	// Apply only fields present in the patch
	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.Description != nil {
		section.Description = *req.Description
	}
	if req.Content != nil {
		section.Content = *req.Content
	}
	if req.Styles != nil {
		section.Styles = *req.Styles
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}
	if req.IsEditable != nil {
		section.IsEditable = *req.IsEditable
	}
	if req.OrderIndex != nil {
		section.OrderIndex = *req.OrderIndex
	}

	section.Version++
	if editor != uuid.Nil {
		section.LastEditedBy = &editor
	}

	if err := s.sectionRepo.Save(section); err != nil {
		return nil, err
	}

	s.wsHub.Publish("section_updated", section.ToPublic(), editor.String())
	return section, nil
}

// DeleteSection removes a section unconditionally; deletion bypasses the
// edit lock on purpose (locked sections can still be retired).
func (s *cmsService) DeleteSection(pageKey, sectionKey string) error {
	section, err := s.GetSection(pageKey, sectionKey)
	if err != nil {
		return err
	}

	if err := s.sectionRepo.Delete(section.ID); err != nil {
		return err
	}

	s.wsHub.Publish("section_deleted", map[string]string{
		"page_key":    pageKey,
		"section_key": sectionKey,
	}, "")
	return nil
}

// ReorderSection swaps the section's order_index with its immediate
// neighbor in one transaction. This is a pairwise swap keyed by the
// fetched neighbor, never an index renumbering: order_index stays an
// opaque ordering key and repeated swaps reach any permutation.
func (s *cmsService) ReorderSection(pageKey, sectionKey, direction string) (*model.Section, error) {
	if direction != DirectionUp && direction != DirectionDown {
		return nil, ErrInvalidDirection
	}

	sections, err := s.sectionRepo.FindByPage(pageKey, false)
	if err != nil {
		return nil, err
	}

	pos := -1
	for i := range sections {
		if sections[i].SectionKey == sectionKey {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, ErrSectionNotFound
	}

	var neighbor int
	switch direction {
	case DirectionUp:
		if pos == 0 {
			return nil, ErrReorderOutOfRange
		}
		neighbor = pos - 1
	case DirectionDown:
		if pos == len(sections)-1 {
			return nil, ErrReorderOutOfRange
		}
		neighbor = pos + 1
	}

	section := &sections[pos]
	other := &sections[neighbor]

	// Both rows must commit together; a half-applied swap would corrupt
	// the page order.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.sectionRepo.UpdateOrderIndex(tx, section.ID, other.OrderIndex); err != nil {
			return err
		}
		return s.sectionRepo.UpdateOrderIndex(tx, other.ID, section.OrderIndex)
	})
	if err != nil {
		return nil, err
	}

	section.OrderIndex, other.OrderIndex = other.OrderIndex, section.OrderIndex

	s.wsHub.Publish("section_reordered", map[string]interface{}{
		"page_key":    pageKey,
		"section_key": sectionKey,
		"direction":   direction,
	}, "")
	return section, nil
}

// SeedDefaults inserts every spec whose (page_key, section_key) pair does
// not exist yet. Existing sections are never touched; only newly created
// rows are returned, so a second run with the same specs returns an
// empty list.
func (s *cmsService) SeedDefaults(specs []CreateSectionRequest) ([]model.Section, error) {
	created := []model.Section{}
	for i := range specs {
		spec := &specs[i]
		existing, err := s.sectionRepo.FindByKey(spec.PageKey, spec.SectionKey)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}
		if existing != nil {
			continue
		}
		section := sectionFromSpec(spec)
		section.Version = 1
		if err := s.sectionRepo.Create(section); err != nil {
			return created, err
		}
		created = append(created, *section)
	}
	return created, nil
}

func (s *cmsService) GetAvailablePages() ([]PageInfo, error) {
	pages := make([]PageInfo, len(pageCatalog))
	copy(pages, pageCatalog)
	for i := range pages {
		count, err := s.sectionRepo.CountByPage(pages[i].PageKey)
		if err != nil {
			return nil, err
		}
		pages[i].SectionsCount = count
	}
	return pages, nil
}

func (s *cmsService) GetStats() (*repository.SectionCounts, error) {
	return s.sectionRepo.Counts()
}

func sectionFromSpec(req *CreateSectionRequest) *model.Section {
	section := &model.Section{
		PageKey:     req.PageKey,
		SectionKey:  req.SectionKey,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Styles:      req.Styles,
		IsActive:    true,
		IsEditable:  true,
		OrderIndex:  req.OrderIndex,
	}
	if req.Content == nil {
		section.Content = model.JSONMap{}
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}
	if req.IsEditable != nil {
		section.IsEditable = *req.IsEditable
	}
	return section
}

// DefaultSections is the initial CMS content seeded on first boot.
var DefaultSections = []CreateSectionRequest{
	{
		PageKey:     "home",
		SectionKey:  "hero",
		Title:       "Main Hero",
		Description: "Primary welcome section",
		Content: model.JSONMap{
			"badge":          "Hi! I'm a Full Stack developer",
			"title":          "Building exceptional",
			"titleHighlight": "web experiences",
			"description":    "I turn ideas into modern, scalable, user-centered web applications.",
			"ctaPrimary":     map[string]interface{}{"text": "See my projects", "url": "/projects"},
			"ctaSecondary":   map[string]interface{}{"text": "Download CV", "url": "/cv/download"},
		},
		Styles:     model.JSONMap{"background": "gradient", "particles": true},
		OrderIndex: 1,
	},
	{
		PageKey:     "home",
		SectionKey:  "featured-projects",
		Title:       "Featured Projects",
		Description: "Featured projects strip on the landing page",
		Content: model.JSONMap{
			"title":       "Featured Projects",
			"description": "A selection of my most recent and significant work",
			"showCount":   6,
		},
		OrderIndex: 2,
	},
	{
		PageKey:     "about",
		SectionKey:  "main-info",
		Title:       "Main Info",
		Description: "Bio and introduction",
		Content: model.JSONMap{
			"title":    "About Me",
			"subtitle": "Full Stack Developer",
			"bio":      "I'm a developer passionate about building innovative and efficient web solutions.",
			"image":    "/images/profile.jpg",
		},
		OrderIndex: 1,
	},
	{
		PageKey:     "contact",
		SectionKey:  "contact-form",
		Title:       "Contact Form",
		Description: "Contact form configuration",
		Content: model.JSONMap{
			"title":           "Let's talk!",
			"description":     "Have a project in mind? Get in touch",
			"email":           "contact@example.com",
			"showSocialLinks": true,
		},
		OrderIndex: 1,
	},
}
