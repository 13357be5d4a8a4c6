package service

import (
	"errors"
	"fmt"

	"go-portfolio-api/internal/authz"
	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"
	"go-portfolio-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)

type UserService interface {
	CreateUser(req *CreateUserRequest, actor *model.User) (*model.User, error)
	UpdateUser(userID uuid.UUID, req *UpdateUserRequest, actor *model.User) (*model.User, error)
	DeleteUser(userID uuid.UUID, actor *model.User) error
	GetAllUsers(offset, limit int) ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
}

type CreateUserRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8"`
	Name     string     `json:"name" validate:"required"`
	Role     authz.Role `json:"role" validate:"required"`
	Bio      string     `json:"bio"`
}

// UpdateUserRequest is a partial patch; nil fields are left untouched.
type UpdateUserRequest struct {
	Email       *string     `json:"email,omitempty" validate:"omitempty,email"`
	Password    *string     `json:"password,omitempty" validate:"omitempty,min=8"`
	Name        *string     `json:"name,omitempty"`
	Role        *authz.Role `json:"role,omitempty"`
	IsActive    *bool       `json:"is_active,omitempty"`
	Bio         *string     `json:"bio,omitempty"`
	AvatarURL   *string     `json:"avatar_url,omitempty"`
	GithubURL   *string     `json:"github_url,omitempty"`
	LinkedinURL *string     `json:"linkedin_url,omitempty"`
	TwitterURL  *string     `json:"twitter_url,omitempty"`
	WebsiteURL  *string     `json:"website_url,omitempty"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(req *CreateUserRequest, actor *model.User) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.AsError(errs)
	}

	if !req.Role.Valid() {
		return nil, ErrInvalidRole
	}

	// Only a super admin may create another super admin
	if req.Role == authz.RoleSuperAdmin {
		if err := authz.RequireSuperAdmin(actor); err != nil {
			return nil, fmt.Errorf("%w: only super admins may create super admin accounts", authz.ErrForbidden)
		}
	}
	// Only admin tier or above may create admins
	if req.Role == authz.RoleAdmin {
		if err := authz.RequireAdminTier(actor); err != nil {
			return nil, fmt.Errorf("%w: only admins may create admin accounts", authz.ErrForbidden)
		}
	}

	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	user := &model.User{
		Email:    req.Email,
		Name:     req.Name,
		UserRole: req.Role,
		IsActive: true,
		Bio:      req.Bio,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(userID uuid.UUID, req *UpdateUserRequest, actor *model.User) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.AsError(errs)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// A principal may never change its own role, whatever the target value
	if req.Role != nil && actor != nil && actor.ID == user.ID {
		return nil, fmt.Errorf("%w: you cannot change your own role", authz.ErrForbidden)
	}

	// Only a super admin may modify a super admin account
	if user.UserRole == authz.RoleSuperAdmin {
		if err := authz.RequireSuperAdmin(actor); err != nil {
			return nil, fmt.Errorf("%w: only super admins may modify super admin accounts", authz.ErrForbidden)
		}
	}

	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, ErrInvalidRole
		}
		// Escalation gates mirror the creation rules
		if *req.Role == authz.RoleSuperAdmin {
			if err := authz.RequireSuperAdmin(actor); err != nil {
				return nil, fmt.Errorf("%w: only super admins may grant the super admin role", authz.ErrForbidden)
			}
		}
		if *req.Role == authz.RoleAdmin {
			if err := authz.RequireAdminTier(actor); err != nil {
				return nil, fmt.Errorf("%w: only admins may grant the admin role", authz.ErrForbidden)
			}
		}
		user.UserRole = *req.Role
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(*req.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailExists
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.GithubURL != nil {
		user.GithubURL = *req.GithubURL
	}
	if req.LinkedinURL != nil {
		user.LinkedinURL = *req.LinkedinURL
	}
	if req.TwitterURL != nil {
		user.TwitterURL = *req.TwitterURL
	}
	if req.WebsiteURL != nil {
		user.WebsiteURL = *req.WebsiteURL
	}
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(userID uuid.UUID, actor *model.User) error {
	// Never your own account
	if actor != nil && actor.ID == userID {
		return fmt.Errorf("%w: you cannot delete your own account", authz.ErrForbidden)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	// Super admin accounts cannot be deleted by anyone; there is no
	// unprotect path.
	if user.UserRole == authz.RoleSuperAdmin {
		return fmt.Errorf("%w: super admin accounts cannot be deleted", authz.ErrForbidden)
	}

	// Only a super admin may delete an admin account
	if authz.IsAdminTier(user.UserRole) {
		if err := authz.RequireSuperAdmin(actor); err != nil {
			return fmt.Errorf("%w: only super admins may delete admin accounts", authz.ErrForbidden)
		}
	}

	return s.userRepo.Delete(userID)
}

func (s *userService) GetAllUsers(offset, limit int) ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll(offset, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	response := user.ToResponse()
	return &response, nil
}
