package domain

import "fmt"

// Role selects which feature set and navigation the booking app exposes.
type Role string

const (
	RoleClient Role = "client"
	RoleSalon  Role = "salon"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleSalon
}

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Identity is the authenticated user of a device session.
// Role is fixed for the lifetime of an identity.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Validate checks the fields a stored identity record must carry.
func (i Identity) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("%w: missing id", ErrStorageRead)
	}
	if !i.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrStorageRead, i.Role)
	}
	return nil
}
