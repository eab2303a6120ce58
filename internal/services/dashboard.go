package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"

	"go.uber.org/zap"
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
}

type DashboardService struct {
	requestRepo   repositories.RequestRepositoryInterface
	dashboardRepo repositories.DashboardRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(
	requestRepo repositories.RequestRepositoryInterface,
	dashboardRepo repositories.DashboardRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		requestRepo:   requestRepo,
		dashboardRepo: dashboardRepo,
		logger:        logger,
	}
}

// GetDashboard buckets every request by status for the kanban board and
// attaches the overdue preventive list for the calendar view.
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}

	columns := map[string][]entities.MaintenanceRequest{
		string(entities.StatusNew):        {},
		string(entities.StatusInProgress): {},
		string(entities.StatusRepaired):   {},
		string(entities.StatusScrap):      {},
		string(entities.StatusClosed):     {},
	}
	for _, request := range requests {
		columns[string(request.Status)] = append(columns[string(request.Status)], request)
	}

	overdue, err := s.dashboardRepo.GetOverdueRequests(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		Columns: columns,
		Overdue: overdue,
	}, nil
}
