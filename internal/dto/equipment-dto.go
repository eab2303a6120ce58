package dto

type CreateEquipmentDTO struct {
	Name              string `json:"name" validate:"required"`
	SerialNumber      string `json:"serial_number" validate:"omitempty"`
	Category          string `json:"category" validate:"omitempty"`
	Department        string `json:"department" validate:"omitempty"`
	Location          string `json:"location" validate:"omitempty"`
	MaintenanceTeamID uint64 `json:"maintenance_team_id" validate:"required"`
	PurchaseDate      string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyUntil     string `json:"warranty_until" validate:"omitempty,datetime=2006-01-02"`
}
