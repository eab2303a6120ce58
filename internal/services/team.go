package services

import (
	"context"
	"time"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	CreateTeam(ctx context.Context, role entities.Role, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error)
	AddMember(ctx context.Context, role entities.Role, teamID, userID uint64) error
	RemoveMember(ctx context.Context, role entities.Role, teamID, userID uint64) error
	IsMember(ctx context.Context, teamID, userID uint64) (bool, error)
	GetSummary(ctx context.Context, teamID uint64) (*dto.TeamSummaryDTO, error)
}

type TeamService struct {
	teamRepo      repositories.TeamRepositoryInterface
	dashboardRepo repositories.DashboardRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	cacheTTL      time.Duration
	logger        *zap.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepositoryInterface,
	dashboardRepo repositories.DashboardRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{
		teamRepo:      teamRepo,
		dashboardRepo: dashboardRepo,
		cacheRepo:     cacheRepo,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	return s.teamRepo.GetTeams(ctx)
}

func (s *TeamService) CreateTeam(ctx context.Context, role entities.Role, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error) {
	if !authz.CanManageTeams(role) {
		return nil, apperrors.NewForbiddenError("not allowed")
	}

	team := entities.MaintenanceTeam{
		Name:        payload.Name,
		Description: null.NewString(payload.Description, payload.Description != ""),
	}

	created, err := s.teamRepo.CreateTeam(ctx, team)
	if err != nil {
		s.logger.Error("failed to create team", zap.Error(err))
		return nil, err
	}

	s.logger.Info("team created", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *TeamService) AddMember(ctx context.Context, role entities.Role, teamID, userID uint64) error {
	if !authz.CanManageTeams(role) {
		return apperrors.NewForbiddenError("not allowed")
	}

	if _, err := s.teamRepo.FindTeam(ctx, teamID); err != nil {
		return err
	}

	if err := s.teamRepo.AddMember(ctx, teamID, userID); err != nil {
		return err
	}

	s.invalidateCache(ctx, teamID)
	return nil
}

func (s *TeamService) RemoveMember(ctx context.Context, role entities.Role, teamID, userID uint64) error {
	if !authz.CanManageTeams(role) {
		return apperrors.NewForbiddenError("not allowed")
	}

	if err := s.teamRepo.RemoveMember(ctx, teamID, userID); err != nil {
		return err
	}

	s.invalidateCache(ctx, teamID)
	return nil
}

// IsMember answers membership from the cache when possible, falling
// back to storage and repopulating on a miss. Cache failures degrade to
// storage reads rather than failing the call.
func (s *TeamService) IsMember(ctx context.Context, teamID, userID uint64) (bool, error) {
	if s.cacheRepo != nil {
		ids, hit, err := s.cacheRepo.GetMemberIDs(ctx, teamID)
		if err != nil {
			s.logger.Warn("membership cache read failed", zap.Uint64("team_id", teamID), zap.Error(err))
		} else if hit {
			for _, id := range ids {
				if id == userID {
					return true, nil
				}
			}
			return false, nil
		}
	}

	ids, err := s.teamRepo.GetMemberIDs(ctx, teamID)
	if err != nil {
		return false, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetMemberIDs(ctx, teamID, ids, s.cacheTTL); err != nil {
			s.logger.Warn("membership cache write failed", zap.Uint64("team_id", teamID), zap.Error(err))
		}
	}

	for _, id := range ids {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *TeamService) GetSummary(ctx context.Context, teamID uint64) (*dto.TeamSummaryDTO, error) {
	team, err := s.teamRepo.FindTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.dashboardRepo.CountRequestsByStatus(ctx, teamID)
	if err != nil {
		return nil, err
	}

	equipmentCount, err := s.dashboardRepo.CountEquipment(ctx, teamID)
	if err != nil {
		return nil, err
	}

	summary := &dto.TeamSummaryDTO{
		TeamID:         team.ID,
		Name:           team.Name,
		EquipmentCount: equipmentCount,
		OpenRequests:   byStatus[string(entities.StatusNew)] + byStatus[string(entities.StatusInProgress)],
		ByStatus:       byStatus,
	}
	return summary, nil
}

func (s *TeamService) invalidateCache(ctx context.Context, teamID uint64) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.InvalidateTeam(ctx, teamID); err != nil {
		s.logger.Warn("membership cache invalidation failed", zap.Uint64("team_id", teamID), zap.Error(err))
	}
}
