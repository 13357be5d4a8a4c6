package repository

import (
	"go-portfolio-api/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get() (*model.SiteSettings, error)
	Create(settings *model.SiteSettings) error
	Save(settings *model.SiteSettings) error
	DeleteAll() error
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db}
}

func (r *settingsRepo) Get() (*model.SiteSettings, error) {
	var settings model.SiteSettings
	if err := r.db.Where("singleton_key = ?", model.SettingsSingletonKey).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepo) Create(settings *model.SiteSettings) error {
	settings.SingletonKey = model.SettingsSingletonKey
	return r.db.Create(settings).Error
}

func (r *settingsRepo) Save(settings *model.SiteSettings) error {
	return r.db.Save(settings).Error
}

func (r *settingsRepo) DeleteAll() error {
	return r.db.Unscoped().Where("singleton_key = ?", model.SettingsSingletonKey).Delete(&model.SiteSettings{}).Error
}
