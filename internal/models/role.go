package models

// Role is a closed set of account roles. Keeping it typed prevents a typo
// from silently minting a brand new role.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// RoleList is the set of roles granted to a user, stored as a JSON array.
type RoleList []Role

// Has reports whether the list contains the given role.
func (l RoleList) Has(role Role) bool {
	for _, r := range l {
		if r == role {
			return true
		}
	}
	return false
}

// DefaultRoles returns the role set assigned to newly registered users.
func DefaultRoles() RoleList {
	return RoleList{RoleUser}
}
