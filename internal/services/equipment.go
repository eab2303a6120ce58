package services

import (
	"context"
	"errors"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, role entities.Role, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	ScrapEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepo.GetEquipments(ctx)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("equipment not found")
		}
		return nil, err
	}
	return equipment, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, role entities.Role, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if !authz.CanManageEquipment(role) {
		return nil, apperrors.NewForbiddenError("not allowed")
	}

	if _, err := s.teamRepo.FindTeam(ctx, payload.MaintenanceTeamID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("maintenance team not found")
		}
		return nil, err
	}

	purchaseDate, err := parseNullDate(payload.PurchaseDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid purchase_date")
	}
	warrantyUntil, err := parseNullDate(payload.WarrantyUntil)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid warranty_until")
	}

	equipment := entities.Equipment{
		Name:              payload.Name,
		SerialNumber:      null.NewString(payload.SerialNumber, payload.SerialNumber != ""),
		Category:          null.NewString(payload.Category, payload.Category != ""),
		Department:        null.NewString(payload.Department, payload.Department != ""),
		Location:          null.NewString(payload.Location, payload.Location != ""),
		MaintenanceTeamID: payload.MaintenanceTeamID,
		PurchaseDate:      purchaseDate,
		WarrantyUntil:     warrantyUntil,
	}

	created, err := s.equipmentRepo.CreateEquipment(ctx, equipment)
	if err != nil {
		s.logger.Error("failed to create equipment", zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment created",
		zap.Uint64("id", created.ID),
		zap.Uint64("team_id", created.MaintenanceTeamID),
	)
	return created, nil
}

// ScrapEquipment forces status to "scrapped". The transition is
// irreversible; calling it on already scrapped equipment is a no-op.
func (s *EquipmentService) ScrapEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	equipment, err := s.equipmentRepo.ScrapEquipment(ctx, nil, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("equipment not found")
		}
		return nil, err
	}

	s.logger.Info("equipment scrapped", zap.Uint64("id", equipment.ID))
	return equipment, nil
}
