package repository

import (
	"go-portfolio-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionCounts aggregates the CMS section counters for the stats endpoint.
type SectionCounts struct {
	TotalPages       int64 `json:"total_pages"`
	TotalSections    int64 `json:"total_sections"`
	ActiveSections   int64 `json:"active_sections"`
	EditableSections int64 `json:"editable_sections"`
}

type SectionRepository interface {
	FindByKey(pageKey, sectionKey string) (*model.Section, error)
	FindByPage(pageKey string, activeOnly bool) ([]model.Section, error)
	FindAll(activeOnly bool) ([]model.Section, error)
	Create(section *model.Section) error
	Save(section *model.Section) error
	Delete(id uuid.UUID) error
	// UpdateOrderIndex takes a tx so both halves of a reorder swap commit
	// atomically
	UpdateOrderIndex(tx *gorm.DB, id uuid.UUID, orderIndex int) error
	CountByPage(pageKey string) (int64, error)
	Counts() (*SectionCounts, error)
}

type sectionRepo struct {
	db *gorm.DB
}

func NewSectionRepo(db *gorm.DB) SectionRepository {
	return &sectionRepo{db}
}

func (r *sectionRepo) FindByKey(pageKey, sectionKey string) (*model.Section, error) {
	var section model.Section
	err := r.db.Where("page_key = ? AND section_key = ?", pageKey, sectionKey).First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepo) FindByPage(pageKey string, activeOnly bool) ([]model.Section, error) {
	var sections []model.Section
	q := r.db.Where("page_key = ?", pageKey)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	// created_at breaks order_index ties so listing order stays stable
	err := q.Order("order_index ASC, created_at ASC").Find(&sections).Error
	return sections, err
}

func (r *sectionRepo) FindAll(activeOnly bool) ([]model.Section, error) {
	var sections []model.Section
	q := r.db.Session(&gorm.Session{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("page_key ASC, order_index ASC, created_at ASC").Find(&sections).Error
	return sections, err
}

func (r *sectionRepo) Create(section *model.Section) error {
	return r.db.Create(section).Error
}

func (r *sectionRepo) Save(section *model.Section) error {
	return r.db.Save(section).Error
}

// Delete removes the row for real. A soft delete would keep the
// (page_key, section_key) pair occupied under the unique index and block
// recreation.
func (r *sectionRepo) Delete(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&model.Section{}, "id = ?", id).Error
}

func (r *sectionRepo) UpdateOrderIndex(tx *gorm.DB, id uuid.UUID, orderIndex int) error {
	return tx.Model(&model.Section{}).Where("id = ?", id).
		Update("order_index", orderIndex).Error
}

func (r *sectionRepo) CountByPage(pageKey string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Section{}).Where("page_key = ?", pageKey).Count(&count).Error
	return count, err
}

func (r *sectionRepo) Counts() (*SectionCounts, error) {
	var counts SectionCounts
	if err := r.db.Model(&model.Section{}).Count(&counts.TotalSections).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Section{}).Where("is_active = ?", true).Count(&counts.ActiveSections).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Section{}).Where("is_editable = ?", true).Count(&counts.EditableSections).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Section{}).Distinct("page_key").Count(&counts.TotalPages).Error; err != nil {
		return nil, err
	}
	return &counts, nil
}
