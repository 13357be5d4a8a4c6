package model

import "github.com/google/uuid"

// Section is a named content block of a CMS page. The (page_key,
// section_key) pair is the natural key; order_index is an opaque
// ordering key among siblings, not guaranteed contiguous.
type Section struct {
	BaseModel
	PageKey     string `gorm:"type:varchar(100);not null;index;uniqueIndex:idx_page_section" json:"page_key" validate:"required"`
	SectionKey  string `gorm:"type:varchar(100);not null;index;uniqueIndex:idx_page_section" json:"section_key" validate:"required"`
	Title       string `gorm:"type:varchar(200);not null" json:"title" validate:"required"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Content payload, free-form JSON structure
	Content JSONMap `gorm:"type:json;not null" json:"content"`
	// Visual configuration
	Styles JSONMap `gorm:"type:json" json:"styles,omitempty"`

	// No column defaults on the flags: GORM drops zero-valued fields
	// from the INSERT when a default tag is present, which would turn a
	// section created inactive or locked into an active editable one.
	IsActive   bool `gorm:"not null" json:"is_active"`
	IsEditable bool `gorm:"not null" json:"is_editable"`
	OrderIndex int  `gorm:"not null;default:0" json:"order_index"`

	// Version increments by one on every successful update
	Version      int        `gorm:"not null;default:1" json:"version"`
	LastEditedBy *uuid.UUID `gorm:"type:uuid" json:"last_edited_by,omitempty"`
}

// SectionPublic is the public-site view of a section (no admin metadata).
type SectionPublic struct {
	SectionKey string  `json:"section_key"`
	Title      string  `json:"title"`
	Content    JSONMap `json:"content"`
	Styles     JSONMap `json:"styles"`
	OrderIndex int     `json:"order_index"`
}

// ToPublic converts a Section to its public representation.
func (s *Section) ToPublic() SectionPublic {
	styles := s.Styles
	if styles == nil {
		styles = JSONMap{}
	}
	return SectionPublic{
		SectionKey: s.SectionKey,
		Title:      s.Title,
		Content:    s.Content,
		Styles:     styles,
		OrderIndex: s.OrderIndex,
	}
}
