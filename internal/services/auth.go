package services

import (
	"context"
	"errors"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
}

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
	jwtSvc   service.JWTService
	logger   *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.UserDTO, error) {
	role := entities.RoleTechnician
	if payload.Role != "" {
		role = entities.Role(payload.Role)
		if !role.Valid() {
			return nil, apperrors.NewBadRequestError("invalid role")
		}
	}

	hashedPassword, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := entities.User{
		Email:        payload.Email,
		PasswordHash: hashedPassword,
		Name:         payload.Name,
		Role:         role,
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.NewBadRequestError("email already exists")
		}
		s.logger.Error("failed to register user", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user registered", zap.Uint64("id", created.ID), zap.String("role", string(created.Role)))
	return &dto.UserDTO{
		ID:    created.ID,
		Email: created.Email,
		Name:  created.Name,
		Role:  string(created.Role),
	}, nil
}

// Login deliberately reports the same error for an unknown email and a
// wrong password.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtSvc.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("failed to sign token", zap.Uint64("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponseDTO{
		Token: token,
		User: dto.UserDTO{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  string(user.Role),
		},
	}, nil
}
