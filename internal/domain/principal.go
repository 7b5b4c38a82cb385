package domain

import "time"

// Roles a principal can hold.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// Principal is an account that can authenticate against the gateway. It is
// unrelated to the User entity served from the upstream data set.
type Principal struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsAdmin reports whether the principal holds the administrative role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
