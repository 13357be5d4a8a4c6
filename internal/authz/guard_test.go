package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPrincipal struct {
	role   Role
	active bool
}

func (s stubPrincipal) Role() Role   { return s.role }
func (s stubPrincipal) Active() bool { return s.active }

func TestRequireActive(t *testing.T) {
	assert.NoError(t, RequireActive(stubPrincipal{role: RoleViewer, active: true}))
	assert.ErrorIs(t, RequireActive(stubPrincipal{role: RoleSuperAdmin, active: false}), ErrUnauthorized)
	assert.ErrorIs(t, RequireActive(nil), ErrUnauthorized)
}

func TestRequirePermission(t *testing.T) {
	editor := stubPrincipal{role: RoleEditor, active: true}

	assert.NoError(t, RequirePermission(editor, PermUpdateCV))
	assert.ErrorIs(t, RequirePermission(editor, PermDeleteProject), ErrForbidden)

	// Inactive principals are unauthorized regardless of role
	inactiveSuper := stubPrincipal{role: RoleSuperAdmin, active: false}
	assert.ErrorIs(t, RequirePermission(inactiveSuper, PermReadUser), ErrUnauthorized)

	// Unknown roles carry no permissions at all
	unknown := stubPrincipal{role: Role("owner"), active: true}
	assert.ErrorIs(t, RequirePermission(unknown, PermReadUser), ErrForbidden)
}

func TestRequireAdminTier(t *testing.T) {
	assert.NoError(t, RequireAdminTier(stubPrincipal{role: RoleSuperAdmin, active: true}))
	assert.NoError(t, RequireAdminTier(stubPrincipal{role: RoleAdmin, active: true}))
	assert.ErrorIs(t, RequireAdminTier(stubPrincipal{role: RoleEditor, active: true}), ErrForbidden)
	assert.ErrorIs(t, RequireAdminTier(nil), ErrUnauthorized)
}

func TestRequireSuperAdmin(t *testing.T) {
	assert.NoError(t, RequireSuperAdmin(stubPrincipal{role: RoleSuperAdmin, active: true}))
	assert.ErrorIs(t, RequireSuperAdmin(stubPrincipal{role: RoleAdmin, active: true}), ErrForbidden)
	assert.ErrorIs(t, RequireSuperAdmin(nil), ErrUnauthorized)
}
