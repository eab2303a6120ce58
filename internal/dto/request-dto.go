package dto

type CreateRequestDTO struct {
	Subject       string `json:"subject" validate:"required"`
	Type          string `json:"type" validate:"required"`
	EquipmentID   uint64 `json:"equipment_id" validate:"required"`
	Description   string `json:"description" validate:"omitempty"`
	ScheduledDate string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
}

type MoveStatusDTO struct {
	NewStatus string `json:"newStatus" validate:"required"`
}
