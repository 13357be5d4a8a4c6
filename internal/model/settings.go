package model

// SiteSettings is the global site configuration. Like the CV, at most
// one row exists; singleton_key carries the unique index enforcing it.
type SiteSettings struct {
	BaseModel
	SingletonKey string `gorm:"type:varchar(10);not null;default:'site';uniqueIndex" json:"-"`

	// Site identity
	SiteName        string `gorm:"type:varchar(100);not null;default:'My Portfolio'" json:"site_name"`
	SiteDescription string `gorm:"type:text" json:"site_description,omitempty"`
	SiteLogoURL     string `gorm:"type:varchar(500)" json:"site_logo_url,omitempty"`
	SiteFaviconURL  string `gorm:"type:varchar(500)" json:"site_favicon_url,omitempty"`

	// Global contact info
	ContactEmail        string `gorm:"type:varchar(255)" json:"contact_email,omitempty"`
	ContactPhone        string `gorm:"type:varchar(50)" json:"contact_phone,omitempty"`
	ContactLocation     string `gorm:"type:varchar(255)" json:"contact_location,omitempty"`
	ContactAvailability string `gorm:"type:varchar(255)" json:"contact_availability,omitempty"`

	// Social links: [{"name": "GitHub", "url": "...", "icon": "...", "enabled": true}]
	SocialLinks JSONList `gorm:"type:json" json:"social_links,omitempty"`

	// SEO
	SEOTitle          string `gorm:"type:varchar(255)" json:"seo_title,omitempty"`
	SEODescription    string `gorm:"type:text" json:"seo_description,omitempty"`
	SEOKeywords       string `gorm:"type:text" json:"seo_keywords,omitempty"`
	SEOOGImage        string `gorm:"type:varchar(500)" json:"seo_og_image,omitempty"`
	GoogleAnalyticsID string `gorm:"type:varchar(50)" json:"google_analytics_id,omitempty"`

	// Appearance
	ThemeMode    string `gorm:"type:varchar(20);not null;default:'auto'" json:"theme_mode"` // light, dark, auto
	PrimaryColor string `gorm:"type:varchar(20);default:'#3B82F6'" json:"primary_color,omitempty"`
	FontFamily   string `gorm:"type:varchar(100)" json:"font_family,omitempty"`

	// Banner and maintenance notices
	MaintenanceMode    bool   `gorm:"not null;default:false" json:"maintenance_mode"`
	MaintenanceMessage string `gorm:"type:text" json:"maintenance_message,omitempty"`
	GlobalBanner       string `gorm:"type:text" json:"global_banner,omitempty"`
	BannerEnabled      bool   `gorm:"not null;default:false" json:"banner_enabled"`
	BannerType         string `gorm:"type:varchar(20);default:'info'" json:"banner_type,omitempty"` // info, warning, error, success
}

// SettingsSingletonKey is the fixed singleton_key value for the settings row.
const SettingsSingletonKey = "site"

// DefaultSiteSettings returns a settings row with factory defaults.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		SingletonKey: SettingsSingletonKey,
		SiteName:     "My Portfolio",
		ThemeMode:    "auto",
		PrimaryColor: "#3B82F6",
		BannerType:   "info",
	}
}
