package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Role is a closed enum. Call sites switch over it exhaustively instead of
// comparing raw strings.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleEmployee   Role = "employee"
)

// ParseRole validates a role value coming from storage or a token claim.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleEmployee:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Actor identifies who is performing an audited operation. Every mutation
// that records a changed_by attribution requires one.
type Actor struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
}
