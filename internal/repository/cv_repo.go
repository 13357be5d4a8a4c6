package repository

import (
	"errors"

	"go-portfolio-api/internal/model"

	"gorm.io/gorm"
)

type CVRepository interface {
	// Get returns the singleton row, gorm.ErrRecordNotFound when absent.
	Get() (*model.CV, error)
	// Exists is an existence probe without fetching the blob.
	Exists() (bool, error)
	// Insert takes a tx so the delete-then-insert replace commits as one
	// transaction.
	Insert(tx *gorm.DB, cv *model.CV) error
	DeleteAll(tx *gorm.DB) (int64, error)
}

type cvRepo struct {
	db *gorm.DB
}

func NewCVRepo(db *gorm.DB) CVRepository {
	return &cvRepo{db}
}

func (r *cvRepo) Get() (*model.CV, error) {
	var cv model.CV
	if err := r.db.Where("singleton_key = ?", model.CVSingletonKey).First(&cv).Error; err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *cvRepo) Exists() (bool, error) {
	var count int64
	err := r.db.Model(&model.CV{}).Where("singleton_key = ?", model.CVSingletonKey).Count(&count).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return count > 0, nil
}

func (r *cvRepo) Insert(tx *gorm.DB, cv *model.CV) error {
	cv.SingletonKey = model.CVSingletonKey
	return tx.Create(cv).Error
}

// DeleteAll hard-deletes so the unique singleton_key index is free for
// the replacement row within the same transaction.
func (r *cvRepo) DeleteAll(tx *gorm.DB) (int64, error) {
	res := tx.Unscoped().Where("singleton_key = ?", model.CVSingletonKey).Delete(&model.CV{})
	return res.RowsAffected, res.Error
}
