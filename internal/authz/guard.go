package authz

import "errors"

var (
	// ErrUnauthorized means no principal could be resolved or the
	// account is inactive.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the principal is resolved but lacks the
	// required permission or role tier.
	ErrForbidden = errors.New("forbidden")
)

// Principal is anything the guard can make decisions about. Keeping this
// an interface means the guard never depends on the persistence-layer
// User type.
type Principal interface {
	Role() Role
	Active() bool
}

// RequireActive fails with ErrUnauthorized when the principal is absent
// or inactive. Every other guard check builds on this one.
func RequireActive(p Principal) error {
	if p == nil || !p.Active() {
		return ErrUnauthorized
	}
	return nil
}

// RequirePermission fails with ErrForbidden unless the principal's role
// carries the permission. Denials are terminal for the request; callers
// must propagate them, never downgrade to deny-and-continue.
func RequirePermission(p Principal, permission Permission) error {
	if err := RequireActive(p); err != nil {
		return err
	}
	if !HasPermission(p.Role(), permission) {
		return ErrForbidden
	}
	return nil
}

// RequireAdminTier fails with ErrForbidden unless the principal is admin
// or above.
func RequireAdminTier(p Principal) error {
	if err := RequireActive(p); err != nil {
		return err
	}
	if !IsAdminTier(p.Role()) {
		return ErrForbidden
	}
	return nil
}

// RequireSuperAdmin fails with ErrForbidden unless the principal is a
// super admin.
func RequireSuperAdmin(p Principal) error {
	if err := RequireActive(p); err != nil {
		return err
	}
	if !IsSuperAdmin(p.Role()) {
		return ErrForbidden
	}
	return nil
}
