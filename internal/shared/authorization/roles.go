package authorization

// UserRole is resolved by the external identity layer and carried in the JWT.
type UserRole string

const (
	// RoleSuperAdmin is the platform operator.
	RoleSuperAdmin UserRole = "superadmin"
	// RoleAdmin is a tenant account.
	RoleAdmin UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsOperator() bool {
	return r == RoleSuperAdmin
}

func (r UserRole) IsTenant() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// ParseUserRole returns the role, or "" when s is not a known role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return ""
}
