package domain

import "strings"

type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleTrainer      Role = "TRAINER"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleClient       Role = "CLIENT"
)

// CanonicalRole is the single normalization point for role strings. Stored
// and transmitted roles historically carried ROLE_ prefixes and mixed casing;
// everything that compares or displays a role goes through here.
func CanonicalRole(s string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.TrimPrefix(normalized, "ROLE_")
	switch Role(normalized) {
	case RoleAdmin, RoleTrainer, RoleReceptionist, RoleClient:
		return Role(normalized), nil
	default:
		return "", ErrInvalidRole
	}
}

// User is a staff account able to operate the console.
type User struct {
	ID           int32  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	Active       bool   `json:"active"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}
