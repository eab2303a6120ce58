package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type RequestStatus string

const (
	StatusNew        RequestStatus = "new"
	StatusInProgress RequestStatus = "in_progress"
	StatusRepaired   RequestStatus = "repaired"
	StatusScrap      RequestStatus = "scrap"
	StatusClosed     RequestStatus = "closed"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusRepaired, StatusScrap, StatusClosed:
		return true
	}
	return false
}

type RequestType string

const (
	TypeCorrective RequestType = "corrective"
	TypePreventive RequestType = "preventive"
)

func (t RequestType) Valid() bool {
	return t == TypeCorrective || t == TypePreventive
}

type MaintenanceRequest struct {
	ID                uint64        `json:"id"`
	Subject           string        `json:"subject"`
	Type              RequestType   `json:"type"`
	EquipmentID       uint64        `json:"equipment_id"`
	TeamID            null.Uint64   `json:"team_id"`
	Status            RequestStatus `json:"status"`
	Description       null.String   `json:"description"`
	ScheduledDate     null.Time     `json:"scheduled_date"`
	RequestedByUserID uint64        `json:"requested_by_user_id"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// Overdue reports whether a scheduled request slipped past its date
// without reaching repaired or scrap.
func (r *MaintenanceRequest) Overdue(now time.Time) bool {
	if !r.ScheduledDate.Valid {
		return false
	}
	if r.Status == StatusRepaired || r.Status == StatusScrap {
		return false
	}
	return r.ScheduledDate.Time.Before(now)
}
