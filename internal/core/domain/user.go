package domain

import "time"

// Role is the closed set of permission levels in the console.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleOrgAdmin   Role = "org_admin"
	RoleOrgUser    Role = "org_user"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleOrgAdmin, RoleOrgUser:
		return true
	}
	return false
}

// RequiresOrganization reports whether the role must carry an
// organization reference. Only super_admin operates outside a tenant.
func (r Role) RequiresOrganization() bool {
	return r == RoleOrgAdmin || r == RoleOrgUser
}

// User models an account in the console. Email doubles as the login key.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           Role      `json:"role"`
	OrganizationID string    `json:"organization_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
