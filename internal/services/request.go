package services

import (
	"context"
	"errors"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error)
	GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, actorID uint64, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error)
	MoveStatus(ctx context.Context, actor Actor, id uint64, newStatus string) (*entities.MaintenanceRequest, error)
}

// Actor is the authenticated identity making a workflow call.
type Actor struct {
	UserID uint64
	Role   entities.Role
}

type RequestService struct {
	txManager       repositories.TxManagerInterface
	requestRepo     repositories.RequestRepositoryInterface
	equipmentRepo   repositories.EquipmentRepositoryInterface
	teamService     TeamServiceInterface
	enforceTeamGate bool
	logger          *zap.Logger
}

func NewRequestService(
	txManager repositories.TxManagerInterface,
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamService TeamServiceInterface,
	enforceTeamGate bool,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		txManager:       txManager,
		requestRepo:     requestRepo,
		equipmentRepo:   equipmentRepo,
		teamService:     teamService,
		enforceTeamGate: enforceTeamGate,
		logger:          logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	return s.requestRepo.GetRequests(ctx)
}

func (s *RequestService) GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error) {
	return s.requestRepo.GetRequestsByEquipment(ctx, equipmentID)
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	request, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("request not found")
		}
		return nil, err
	}
	return request, nil
}

// CreateRequest derives team_id from the referenced equipment's owning
// team and always starts the request at "new".
func (s *RequestService) CreateRequest(ctx context.Context, actorID uint64, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	requestType := entities.RequestType(payload.Type)
	if !requestType.Valid() {
		return nil, apperrors.NewBadRequestError("invalid request type")
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("equipment not found")
		}
		return nil, err
	}

	scheduledDate, err := parseNullDate(payload.ScheduledDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid scheduled_date")
	}

	request := entities.MaintenanceRequest{
		Subject:           payload.Subject,
		Type:              requestType,
		EquipmentID:       equipment.ID,
		TeamID:            null.Uint64From(equipment.MaintenanceTeamID),
		Status:            entities.StatusNew,
		Description:       null.NewString(payload.Description, payload.Description != ""),
		ScheduledDate:     scheduledDate,
		RequestedByUserID: actorID,
	}

	created, err := s.requestRepo.CreateRequest(ctx, request)
	if err != nil {
		s.logger.Error("failed to create maintenance request", zap.Error(err))
		return nil, err
	}

	s.logger.Info("maintenance request created",
		zap.Uint64("id", created.ID),
		zap.Uint64("equipment_id", created.EquipmentID),
		zap.String("type", string(created.Type)),
	)
	return created, nil
}

// MoveStatus applies a workflow transition. Moving to "scrap" also
// scraps the equipment; both writes share one transaction so a failure
// leaves neither applied.
func (s *RequestService) MoveStatus(ctx context.Context, actor Actor, id uint64, newStatus string) (*entities.MaintenanceRequest, error) {
	status := entities.RequestStatus(newStatus)
	if !status.Valid() {
		return nil, apperrors.NewBadRequestError("invalid status")
	}

	request, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("request not found")
		}
		return nil, err
	}

	if s.enforceTeamGate {
		if err := s.checkTeamGate(ctx, actor, request); err != nil {
			return nil, err
		}
	}

	if status != entities.StatusScrap {
		updated, err := s.requestRepo.UpdateStatus(ctx, nil, id, status)
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	var updated *entities.MaintenanceRequest
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var txErr error
		updated, txErr = s.requestRepo.UpdateStatus(ctx, tx, id, status)
		if txErr != nil {
			return txErr
		}
		_, txErr = s.equipmentRepo.ScrapEquipment(ctx, tx, request.EquipmentID)
		return txErr
	})
	if err != nil {
		s.logger.Error("scrap transition failed", zap.Uint64("request_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("request scrapped with equipment",
		zap.Uint64("request_id", id),
		zap.Uint64("equipment_id", request.EquipmentID),
	)
	return updated, nil
}

func (s *RequestService) checkTeamGate(ctx context.Context, actor Actor, request *entities.MaintenanceRequest) error {
	if !request.TeamID.Valid {
		return apperrors.NewForbiddenError("no team assigned")
	}

	isMember, err := s.teamService.IsMember(ctx, request.TeamID.Uint64, actor.UserID)
	if err != nil {
		return err
	}

	allowed := authz.CanMutateTeamRequest(authz.Context{
		ActorID:  actor.UserID,
		Role:     actor.Role,
		IsMember: isMember,
	})
	if !allowed {
		return apperrors.NewForbiddenError("not allowed")
	}
	return nil
}

func parseNullDate(value string) (null.Time, error) {
	if value == "" {
		return null.Time{}, nil
	}
	t, err := utils.ParseDate(value)
	if err != nil {
		return null.Time{}, err
	}
	return null.TimeFrom(t), nil
}
