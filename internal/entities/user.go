package entities

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleTechnician Role = "technician"
	RoleRequester  Role = "requester"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTechnician, RoleRequester:
		return true
	}
	return false
}

// IsElevated reports whether the role bypasses team-membership checks.
func (r Role) IsElevated() bool {
	return r == RoleAdmin || r == RoleManager
}

type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
