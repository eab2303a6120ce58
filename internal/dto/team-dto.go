package dto

type CreateTeamDTO struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
}

type AddTeamMemberDTO struct {
	UserID uint64 `json:"user_id" validate:"required"`
}

type TeamSummaryDTO struct {
	TeamID         uint64            `json:"team_id"`
	Name           string            `json:"name"`
	EquipmentCount uint64            `json:"equipment_count"`
	OpenRequests   uint64            `json:"open_requests"`
	ByStatus       map[string]uint64 `json:"by_status"`
}
