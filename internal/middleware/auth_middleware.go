package middleware

import (
	"errors"
	"strings"

	"go-portfolio-api/internal/authz"
	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"
	"go-portfolio-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// localsUserKey is where RequireAuth stores the resolved principal.
const localsUserKey = "current_user"

// CurrentUser returns the principal resolved by RequireAuth, or nil on
// unauthenticated routes.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(localsUserKey).(*model.User)
	return user
}

// RequireAuth validates the bearer token and resolves a fresh principal
// from the database so role or active-flag changes take effect
// immediately, not at token expiry.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
		}

		if err := authz.RequireActive(user); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User account is inactive"})
		}

		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// OptionalAuth resolves a principal when a valid bearer token is
// present and continues anonymously otherwise. Public routes use it so
// admin callers get their elevated view (draft projects) on the same
// endpoints without making authentication mandatory.
func OptionalAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Next()
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Next()
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil || authz.RequireActive(user) != nil {
			return c.Next()
		}

		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// RequirePermission gates a route on one permission of the principal's
// role. Must run after RequireAuth.
func RequirePermission(permission authz.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return unauthorized(c)
		}
		if err := authz.RequirePermission(user, permission); err != nil {
			return forbidden(c, err, "Forbidden: requires '"+string(permission)+"' permission")
		}
		return c.Next()
	}
}

// RequireAdminTier gates a route on the admin-or-above tier check.
func RequireAdminTier() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return unauthorized(c)
		}
		if err := authz.RequireAdminTier(user); err != nil {
			return forbidden(c, err, "Forbidden: requires admin access")
		}
		return c.Next()
	}
}

// RequireSuperAdmin gates a route on the super admin tier check.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return unauthorized(c)
		}
		if err := authz.RequireSuperAdmin(user); err != nil {
			return forbidden(c, err, "Forbidden: requires super admin access")
		}
		return c.Next()
	}
}

func forbidden(c *fiber.Ctx, err error, message string) error {
	if errors.Is(err, authz.ErrUnauthorized) {
		return unauthorized(c)
	}
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": message})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
}
