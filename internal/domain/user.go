package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role classifies what a user is allowed to represent in the system.
type Role string

const (
	RoleManager Role = "Manager"
	RoleExpert  Role = "Expert"
	RoleUser    Role = "User"
	RoleSystem  Role = "System"
)

// ParseRole parses a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	for _, r := range []Role{RoleManager, RoleExpert, RoleUser, RoleSystem} {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// User represents an account tasks can be owned by.
// Fields are ordered to minimize memory padding.
type User struct {
	CreatedAt time.Time // Creation time
	ID        string    // Unique identifier
	Name      string    // Display name
	Role      Role      // Manager / Expert / User / System
}
