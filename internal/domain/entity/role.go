package entity

import (
	errs "github.com/example/marketplace/internal/domain/error"
)

// Role is the closed set of account roles. Authorization is a plain
// set-membership test over these values; there is no role hierarchy.
type Role string

const (
	RoleBuyer     Role = "buyer"
	RoleSeller    Role = "seller"
	RoleSuperuser Role = "superuser"
)

// ParseRole validates a raw role string against the closed set
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleBuyer, RoleSeller, RoleSuperuser:
		return Role(raw), nil
	default:
		return "", errs.ErrInvalidRole
	}
}

// In reports whether the role is one of the allowed roles
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// String returns the wire representation of the role
func (r Role) String() string {
	return string(r)
}
