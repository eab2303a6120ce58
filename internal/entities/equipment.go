package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type EquipmentStatus string

const (
	EquipmentActive   EquipmentStatus = "active"
	EquipmentScrapped EquipmentStatus = "scrapped"
)

type Equipment struct {
	ID                uint64          `json:"id"`
	Name              string          `json:"name"`
	SerialNumber      null.String     `json:"serial_number"`
	Category          null.String     `json:"category"`
	Department        null.String     `json:"department"`
	Location          null.String     `json:"location"`
	MaintenanceTeamID uint64          `json:"maintenance_team_id"`
	Status            EquipmentStatus `json:"status"`
	PurchaseDate      null.Time       `json:"purchase_date"`
	WarrantyUntil     null.Time       `json:"warranty_until"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
