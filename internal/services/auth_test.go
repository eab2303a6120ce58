package services

import (
	"context"
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userColumns = []string{"id", "email", "password_hash", "name", "role", "created_at"}

func setupAuthService(t *testing.T) (AuthServiceInterface, pgxmock.PgxPoolIface, service.JWTService) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	logger := zap.NewNop()
	userRepo := repositories.NewUserRepository(mock, logger)
	jwtSvc := service.NewJWTService("test-secret", time.Hour)

	return NewAuthService(userRepo, jwtSvc, logger), mock, jwtSvc
}

func TestAuthService_Register_DefaultsToTechnician(t *testing.T) {
	svc, mock, _ := setupAuthService(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("jane@example.com", pgxmock.AnyArg(), "Jane", entities.RoleTechnician).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uint64(1), time.Now()))

	user, err := svc.Register(context.Background(), dto.RegisterDTO{
		Email:    "jane@example.com",
		Password: "secret123",
		Name:     "Jane",
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(1), user.ID)
	assert.Equal(t, "technician", user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc, mock, _ := setupAuthService(t)

	_, err := svc.Register(context.Background(), dto.RegisterDTO{
		Email:    "jane@example.com",
		Password: "secret123",
		Name:     "Jane",
		Role:     "superuser",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Equal(t, "invalid role", httpErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, mock, _ := setupAuthService(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("jane@example.com", pgxmock.AnyArg(), "Jane", entities.RoleTechnician).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := svc.Register(context.Background(), dto.RegisterDTO{
		Email:    "jane@example.com",
		Password: "secret123",
		Name:     "Jane",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Equal(t, "email already exists", httpErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Login(t *testing.T) {
	svc, mock, jwtSvc := setupAuthService(t)

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email`).
		WithArgs("jane@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(uint64(1), "jane@example.com", hash, "Jane", entities.RoleManager, time.Now()))

	resp, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "jane@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "manager", resp.User.Role)

	claims, err := jwtSvc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)
	assert.Equal(t, "manager", claims.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Unknown email and wrong password must be indistinguishable to the
// caller.
func TestAuthService_Login_SameErrorForUnknownEmailAndBadPassword(t *testing.T) {
	svc, mock, _ := setupAuthService(t)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, unknownEmailErr := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	hash, err := utils.HashPassword("the-real-password")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email`).
		WithArgs("jane@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(uint64(1), "jane@example.com", hash, "Jane", entities.RoleTechnician, time.Now()))

	_, badPasswordErr := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, unknownEmailErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, badPasswordErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownEmailErr, badPasswordErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
