package authz

// Role is a named privilege tier assigned to a user account.
type Role string

const (
	RoleSuperAdmin Role = "super_admin" // Full system control
	RoleAdmin      Role = "admin"       // Full management (projects, CV, users)
	RoleEditor     Role = "editor"      // Content editing only
	RoleViewer     Role = "viewer"      // Read only
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// IsAdminTier reports whether r is admin or above. Used for the two
// hard-coded tier checks that protect role escalation; everything else
// goes through the permission table.
func IsAdminTier(r Role) bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// IsSuperAdmin reports whether r is the super admin role.
func IsSuperAdmin(r Role) bool {
	return r == RoleSuperAdmin
}

// Permission is an atomic capability token. Permissions are never
// combined or negated; membership in a role's set is the sole
// authorization primitive.
type Permission string

const (
	// Users
	PermCreateUser  Permission = "create_user"
	PermReadUser    Permission = "read_user"
	PermUpdateUser  Permission = "update_user"
	PermDeleteUser  Permission = "delete_user"
	PermManageRoles Permission = "manage_roles"

	// Projects
	PermCreateProject  Permission = "create_project"
	PermReadProject    Permission = "read_project"
	PermUpdateProject  Permission = "update_project"
	PermDeleteProject  Permission = "delete_project"
	PermPublishProject Permission = "publish_project"

	// CV
	PermUpdateCV      Permission = "update_cv"
	PermGenerateCVPDF Permission = "generate_cv_pdf"

	// Files
	PermUploadFile Permission = "upload_file"
	PermDeleteFile Permission = "delete_file"

	// System
	PermViewAnalytics  Permission = "view_analytics"
	PermManageSettings Permission = "manage_settings"
)

// rolePermissions maps each role to its permission set. Built once at
// init and never mutated afterwards. SuperAdmin must stay a superset of
// every other role; keep the lists in sync by hand when adding tokens.
var rolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermCreateUser,
		PermReadUser,
		PermUpdateUser,
		PermDeleteUser,
		PermManageRoles,
		PermCreateProject,
		PermReadProject,
		PermUpdateProject,
		PermDeleteProject,
		PermPublishProject,
		PermUpdateCV,
		PermGenerateCVPDF,
		PermUploadFile,
		PermDeleteFile,
		PermViewAnalytics,
		PermManageSettings,
	},
	RoleAdmin: {
		PermCreateUser,
		PermReadUser,
		PermUpdateUser,
		PermCreateProject,
		PermReadProject,
		PermUpdateProject,
		PermDeleteProject,
		PermPublishProject,
		PermUpdateCV,
		PermGenerateCVPDF,
		PermUploadFile,
		PermDeleteFile,
		PermViewAnalytics,
	},
	RoleEditor: {
		PermReadUser,
		PermCreateProject,
		PermReadProject,
		PermUpdateProject,
		PermUpdateCV,
		PermGenerateCVPDF,
		PermUploadFile,
	},
	RoleViewer: {
		PermReadUser,
		PermReadProject,
		PermViewAnalytics,
	},
}

// AllRoles lists the defined roles, most privileged first.
var AllRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleEditor, RoleViewer}

// PermissionsFor returns the permission set of a role. Unknown roles get
// an empty set rather than an error (fail closed).
func PermissionsFor(role Role) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether a role carries a specific permission.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// PermissionCodes returns the role's permissions as plain strings for
// API responses and JWT claims.
func PermissionCodes(role Role) []string {
	perms := rolePermissions[role]
	codes := make([]string, len(perms))
	for i, p := range perms {
		codes[i] = string(p)
	}
	return codes
}
