package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-portfolio-api/internal/authz"
)

// User represents an administration account for the portfolio
type User struct {
	BaseModel
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Name         string     `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Password     string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	UserRole     authz.Role `gorm:"type:varchar(20);not null;default:'viewer'" json:"role"`
	IsActive     bool       `gorm:"not null" json:"is_active"` // No default tag: accounts created inactive must persist inactive
	Bio          string     `gorm:"type:text" json:"bio,omitempty"`
	AvatarURL    string     `gorm:"type:varchar(500)" json:"avatar_url,omitempty"`
	GithubURL    string     `gorm:"type:varchar(255)" json:"github_url,omitempty"`
	LinkedinURL  string     `gorm:"type:varchar(255)" json:"linkedin_url,omitempty"`
	TwitterURL   string     `gorm:"type:varchar(255)" json:"twitter_url,omitempty"`
	WebsiteURL   string     `gorm:"type:varchar(255)" json:"website_url,omitempty"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// Role implements authz.Principal
func (u *User) Role() authz.Role {
	if u == nil {
		return ""
	}
	return u.UserRole
}

// Active implements authz.Principal. Nil-safe so a missing actor fails
// the guard instead of panicking.
func (u *User) Active() bool { return u != nil && u.IsActive }

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        authz.Role `json:"role"`
	IsActive    bool       `json:"is_active"`
	Bio         string     `json:"bio,omitempty"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	GithubURL   string     `json:"github_url,omitempty"`
	LinkedinURL string     `json:"linkedin_url,omitempty"`
	TwitterURL  string     `json:"twitter_url,omitempty"`
	WebsiteURL  string     `json:"website_url,omitempty"`
	Permissions []string   `json:"permissions"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToResponse converts User to UserResponse, deriving the flat
// permissions list from the role table.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.UserRole,
		IsActive:    u.IsActive,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		GithubURL:   u.GithubURL,
		LinkedinURL: u.LinkedinURL,
		TwitterURL:  u.TwitterURL,
		WebsiteURL:  u.WebsiteURL,
		Permissions: authz.PermissionCodes(u.UserRole),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
