package types

import (
	"fmt"
	"strings"
)

// Role is the kind of relationship a link establishes between a contact
// and a property. The set is closed; unknown tokens are rejected at the
// parsing boundary, and the engine defends against an invalid Role
// reaching it anyway.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// ParseRole converts a user-supplied token into a Role.
// Matching is case-insensitive.
func ParseRole(token string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(token))) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleBuyer:
		return RoleBuyer, nil
	case RoleSeller:
		return RoleSeller, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, token)
	}
}

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleBuyer, RoleSeller:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
