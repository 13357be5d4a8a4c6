package repository

import (
	"go-portfolio-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStats aggregates project counters for the admin dashboard.
type ProjectStats struct {
	TotalProjects     int64 `json:"total_projects"`
	PublishedProjects int64 `json:"published_projects"`
	FeaturedProjects  int64 `json:"featured_projects"`
	TotalViews        int64 `json:"total_views"`
}

type ProjectRepository interface {
	Create(project *model.Project) error
	FindAll(includeUnpublished bool) ([]model.Project, error)
	FindByID(id uuid.UUID) (*model.Project, error)
	FindBySlug(slug string) (*model.Project, error)
	FindFeatured(limit int) ([]model.Project, error)
	Save(project *model.Project) error
	Delete(id uuid.UUID) error
	IncrementViewCount(id uuid.UUID) error
	SlugExists(slug string) (bool, error)
	Stats() (*ProjectStats, error)
}

type projectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db}
}

func (r *projectRepo) Create(project *model.Project) error {
	return r.db.Create(project).Error
}

func (r *projectRepo) FindAll(includeUnpublished bool) ([]model.Project, error) {
	var projects []model.Project
	q := r.db.Order("order_index ASC, created_at DESC")
	if !includeUnpublished {
		q = q.Where("is_published = ?", true)
	}
	err := q.Find(&projects).Error
	return projects, err
}

func (r *projectRepo) FindByID(id uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) FindBySlug(slug string) (*model.Project, error) {
	var project model.Project
	if err := r.db.Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) FindFeatured(limit int) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.Where("is_published = ? AND is_featured = ?", true, true).
		Order("order_index ASC, created_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *projectRepo) Save(project *model.Project) error {
	return r.db.Save(project).Error
}

func (r *projectRepo) Delete(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&model.Project{}, "id = ?", id).Error
}

func (r *projectRepo) IncrementViewCount(id uuid.UUID) error {
	return r.db.Model(&model.Project{}).Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *projectRepo) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Project{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *projectRepo) Stats() (*ProjectStats, error) {
	var stats ProjectStats
	if err := r.db.Model(&model.Project{}).Count(&stats.TotalProjects).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Project{}).Where("is_published = ?", true).Count(&stats.PublishedProjects).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Project{}).Where("is_featured = ?", true).Count(&stats.FeaturedProjects).Error; err != nil {
		return nil, err
	}
	var total struct{ Total int64 }
	if err := r.db.Model(&model.Project{}).Select("COALESCE(SUM(view_count), 0) AS total").Scan(&total).Error; err != nil {
		return nil, err
	}
	stats.TotalViews = total.Total
	return &stats, nil
}
