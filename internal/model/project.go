package model

import "github.com/google/uuid"

// Project is a portfolio project entry
type Project struct {
	BaseModel
	Title            string `gorm:"type:varchar(200);not null" json:"title" validate:"required"`
	Slug             string `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
	Description      string `gorm:"type:text;not null" json:"description" validate:"required"`
	ShortDescription string `gorm:"type:varchar(500)" json:"short_description,omitempty"`

	// Detailed markdown body
	Content string `gorm:"type:text" json:"content,omitempty"`

	GithubURL    string `gorm:"type:varchar(500)" json:"github_url,omitempty"`
	ThumbnailURL string `gorm:"type:varchar(500)" json:"thumbnail_url,omitempty"`

	// Demo configuration
	DemoVideoType      string   `gorm:"type:varchar(20)" json:"demo_video_type,omitempty"` // youtube, local
	DemoVideoURL       string   `gorm:"type:varchar(500)" json:"demo_video_url,omitempty"`
	DemoVideoThumbnail string   `gorm:"type:varchar(500)" json:"demo_video_thumbnail,omitempty"`
	DemoImages         JSONList `gorm:"type:json" json:"demo_images,omitempty"`

	// Technologies: [{"name": "Go", "icon": "...", "enabled": true}]
	Technologies JSONList `gorm:"type:json" json:"technologies"`
	Tags         JSONList `gorm:"type:json" json:"tags,omitempty"`

	// IsPublished carries no column default so a project created as a
	// draft stays a draft (GORM omits zero-valued fields that have a
	// default tag, letting the DB default win).
	IsFeatured  bool `gorm:"not null;default:false" json:"is_featured"`
	IsPublished bool `gorm:"not null" json:"is_published"`
	OrderIndex  int  `gorm:"not null;default:0" json:"order_index"`
	ViewCount   int  `gorm:"not null;default:0" json:"view_count"`

	OwnerID uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`
	Owner   *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}
