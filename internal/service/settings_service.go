package service

import (
	"errors"

	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"

	"gorm.io/gorm"
)

type SettingsService interface {
	// GetOrCreate returns the settings row, creating defaults on first use.
	GetOrCreate() (*model.SiteSettings, error)
	Update(req *UpdateSettingsRequest) (*model.SiteSettings, error)
	ResetToDefaults() (*model.SiteSettings, error)
}

// UpdateSettingsRequest is a partial patch over the settings singleton.
type UpdateSettingsRequest struct {
	SiteName        *string `json:"site_name,omitempty"`
	SiteDescription *string `json:"site_description,omitempty"`
	SiteLogoURL     *string `json:"site_logo_url,omitempty"`
	SiteFaviconURL  *string `json:"site_favicon_url,omitempty"`

	ContactEmail        *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone        *string `json:"contact_phone,omitempty"`
	ContactLocation     *string `json:"contact_location,omitempty"`
	ContactAvailability *string `json:"contact_availability,omitempty"`

	SocialLinks *model.JSONList `json:"social_links,omitempty"`

	SEOTitle          *string `json:"seo_title,omitempty"`
	SEODescription    *string `json:"seo_description,omitempty"`
	SEOKeywords       *string `json:"seo_keywords,omitempty"`
	SEOOGImage        *string `json:"seo_og_image,omitempty"`
	GoogleAnalyticsID *string `json:"google_analytics_id,omitempty"`

	ThemeMode    *string `json:"theme_mode,omitempty" validate:"omitempty,oneof=light dark auto"`
	PrimaryColor *string `json:"primary_color,omitempty"`
	FontFamily   *string `json:"font_family,omitempty"`

	MaintenanceMode    *bool   `json:"maintenance_mode,omitempty"`
	MaintenanceMessage *string `json:"maintenance_message,omitempty"`
	GlobalBanner       *string `json:"global_banner,omitempty"`
	BannerEnabled      *bool   `json:"banner_enabled,omitempty"`
	BannerType         *string `json:"banner_type,omitempty" validate:"omitempty,oneof=info warning error success"`
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetOrCreate() (*model.SiteSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := model.DefaultSiteSettings()
	if err := s.settingsRepo.Create(defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

func (s *settingsService) Update(req *UpdateSettingsRequest) (*model.SiteSettings, error) {
	settings, err := s.GetOrCreate()
	if err != nil {
		return nil, err
	}

	if req.SiteName != nil {
		settings.SiteName = *req.SiteName
	}
	if req.SiteDescription != nil {
		settings.SiteDescription = *req.SiteDescription
	}
	if req.SiteLogoURL != nil {
		settings.SiteLogoURL = *req.SiteLogoURL
	}
	if req.SiteFaviconURL != nil {
		settings.SiteFaviconURL = *req.SiteFaviconURL
	}
	if req.ContactEmail != nil {
		settings.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		settings.ContactPhone = *req.ContactPhone
	}
	if req.ContactLocation != nil {
		settings.ContactLocation = *req.ContactLocation
	}
	if req.ContactAvailability != nil {
		settings.ContactAvailability = *req.ContactAvailability
	}
	if req.SocialLinks != nil {
		settings.SocialLinks = *req.SocialLinks
	}
	if req.SEOTitle != nil {
		settings.SEOTitle = *req.SEOTitle
	}
	if req.SEODescription != nil {
		settings.SEODescription = *req.SEODescription
	}
	if req.SEOKeywords != nil {
		settings.SEOKeywords = *req.SEOKeywords
	}
	if req.SEOOGImage != nil {
		settings.SEOOGImage = *req.SEOOGImage
	}
	if req.GoogleAnalyticsID != nil {
		settings.GoogleAnalyticsID = *req.GoogleAnalyticsID
	}
	if req.ThemeMode != nil {
		settings.ThemeMode = *req.ThemeMode
	}
	if req.PrimaryColor != nil {
		settings.PrimaryColor = *req.PrimaryColor
	}
	if req.FontFamily != nil {
		settings.FontFamily = *req.FontFamily
	}
	if req.MaintenanceMode != nil {
		settings.MaintenanceMode = *req.MaintenanceMode
	}
	if req.MaintenanceMessage != nil {
		settings.MaintenanceMessage = *req.MaintenanceMessage
	}
	if req.GlobalBanner != nil {
		settings.GlobalBanner = *req.GlobalBanner
	}
	if req.BannerEnabled != nil {
		settings.BannerEnabled = *req.BannerEnabled
	}
	if req.BannerType != nil {
		settings.BannerType = *req.BannerType
	}

	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) ResetToDefaults() (*model.SiteSettings, error) {
	if err := s.settingsRepo.DeleteAll(); err != nil {
		return nil, err
	}
	defaults := model.DefaultSiteSettings()
	if err := s.settingsRepo.Create(defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}
