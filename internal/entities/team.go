package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type MaintenanceTeam struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}

// TeamMember grants a user visibility and mutation rights over the
// team's maintenance requests.
type TeamMember struct {
	TeamID uint64 `json:"team_id"`
	UserID uint64 `json:"user_id"`
}
