package account

import "strings"

const RoleAdmin = "admin"

// Principal is the resolved identity behind a verified access token.
type Principal struct {
	UserID string
	Name   string
	Roles  []string
}

// IsAdmin reports whether the principal may use the write path.
func (p Principal) IsAdmin() bool {
	for _, role := range p.Roles {
		if strings.EqualFold(strings.TrimSpace(role), RoleAdmin) {
			return true
		}
	}
	return false
}
