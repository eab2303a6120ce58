package dto

import "gearguard/internal/entities"

// DashboardDTO backs the kanban board and the preventive calendar: every
// request bucketed by status, plus the overdue preventive slice.
type DashboardDTO struct {
	Columns map[string][]entities.MaintenanceRequest `json:"columns"`
	Overdue []entities.MaintenanceRequest            `json:"overdue"`
}
