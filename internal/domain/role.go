package domain

import "strings"

// Role enumerates the closed set of user roles known to the backend.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// RoleTagPrefix is the convention used inside token claims to express
// authorization ("ROLE_ADMIN", "ROLE_TEACHER", "ROLE_STUDENT").
const RoleTagPrefix = "ROLE_"

// Tag returns the role-tag form carried in token claims.
func (r Role) Tag() string {
	return RoleTagPrefix + string(r)
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// RoleFromTag parses a role-tag back into a Role. The convention is
// validated here, at the decoding boundary, rather than at call sites.
func RoleFromTag(tag string) (Role, bool) {
	name, ok := strings.CutPrefix(tag, RoleTagPrefix)
	if !ok {
		return "", false
	}
	role := Role(name)
	if !role.Valid() {
		return "", false
	}
	return role, true
}
