package services

import (
	"context"
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCacheRepo is an in-memory stand-in for the Redis membership cache.
type fakeCacheRepo struct {
	entries     map[uint64][]uint64
	readErr     error
	setCalls    int
	invalidated []uint64
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{entries: make(map[uint64][]uint64)}
}

func (f *fakeCacheRepo) GetMemberIDs(_ context.Context, teamID uint64) ([]uint64, bool, error) {
	if f.readErr != nil {
		return nil, false, f.readErr
	}
	ids, ok := f.entries[teamID]
	return ids, ok, nil
}

func (f *fakeCacheRepo) SetMemberIDs(_ context.Context, teamID uint64, userIDs []uint64, _ time.Duration) error {
	f.setCalls++
	f.entries[teamID] = userIDs
	return nil
}

func (f *fakeCacheRepo) InvalidateTeam(_ context.Context, teamID uint64) error {
	f.invalidated = append(f.invalidated, teamID)
	delete(f.entries, teamID)
	return nil
}

func setupTeamService(t *testing.T, cache repositories.CacheRepositoryInterface) (TeamServiceInterface, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	logger := zap.NewNop()
	teamRepo := repositories.NewTeamRepository(mock, logger)
	dashboardRepo := repositories.NewDashboardRepository(mock, logger)

	return NewTeamService(teamRepo, dashboardRepo, cache, time.Minute, logger), mock
}

func teamRow(id uint64, name string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "description", "created_at"}).
		AddRow(id, name, nil, time.Now())
}

func TestTeamService_CreateTeam_ForbiddenForTechnician(t *testing.T) {
	svc, mock := setupTeamService(t, nil)

	_, err := svc.CreateTeam(context.Background(), entities.RoleTechnician, dto.CreateTeamDTO{Name: "Mechanical"})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_CreateTeam(t *testing.T) {
	svc, mock := setupTeamService(t, nil)

	mock.ExpectQuery(`INSERT INTO maintenance_teams`).
		WithArgs("Mechanical", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uint64(7), time.Now()))

	team, err := svc.CreateTeam(context.Background(), entities.RoleAdmin, dto.CreateTeamDTO{Name: "Mechanical"})

	require.NoError(t, err)
	assert.Equal(t, uint64(7), team.ID)
	assert.Equal(t, "Mechanical", team.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_AddMember_InvalidatesCache(t *testing.T) {
	cache := newFakeCacheRepo()
	cache.entries[7] = []uint64{2}
	svc, mock := setupTeamService(t, cache)

	mock.ExpectQuery(`SELECT .+ FROM maintenance_teams WHERE id`).
		WithArgs(uint64(7)).
		WillReturnRows(teamRow(7, "Mechanical"))
	mock.ExpectExec(`INSERT INTO team_members`).
		WithArgs(uint64(7), uint64(3)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := svc.AddMember(context.Background(), entities.RoleManager, 7, 3)

	require.NoError(t, err)
	assert.Equal(t, []uint64{7}, cache.invalidated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_RemoveMember_UnknownMembership(t *testing.T) {
	svc, mock := setupTeamService(t, nil)

	mock.ExpectExec(`DELETE FROM team_members`).
		WithArgs(uint64(7), uint64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := svc.RemoveMember(context.Background(), entities.RoleAdmin, 7, 3)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_IsMember_CacheHitSkipsStorage(t *testing.T) {
	cache := newFakeCacheRepo()
	cache.entries[7] = []uint64{2, 3}
	svc, mock := setupTeamService(t, cache)

	isMember, err := svc.IsMember(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.True(t, isMember)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_IsMember_CacheMissRepopulates(t *testing.T) {
	cache := newFakeCacheRepo()
	svc, mock := setupTeamService(t, cache)

	mock.ExpectQuery(`SELECT user_id FROM team_members`).
		WithArgs(uint64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(uint64(2)).AddRow(uint64(3)))

	isMember, err := svc.IsMember(context.Background(), 7, 2)

	require.NoError(t, err)
	assert.True(t, isMember)
	assert.Equal(t, 1, cache.setCalls)
	assert.Equal(t, []uint64{2, 3}, cache.entries[7])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_IsMember_CacheErrorFallsBackToStorage(t *testing.T) {
	cache := newFakeCacheRepo()
	cache.readErr = assert.AnError
	svc, mock := setupTeamService(t, cache)

	mock.ExpectQuery(`SELECT user_id FROM team_members`).
		WithArgs(uint64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(uint64(2)))

	isMember, err := svc.IsMember(context.Background(), 7, 5)

	require.NoError(t, err)
	assert.False(t, isMember)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_GetSummary(t *testing.T) {
	svc, mock := setupTeamService(t, nil)

	mock.ExpectQuery(`SELECT .+ FROM maintenance_teams WHERE id`).
		WithArgs(uint64(7)).
		WillReturnRows(teamRow(7, "Mechanical"))

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) FROM maintenance_requests`).
		WithArgs(uint64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count"}).
			AddRow("new", uint64(4)).
			AddRow("in_progress", uint64(2)).
			AddRow("closed", uint64(9)))

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM equipment`).
		WithArgs(uint64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(uint64(12)))

	summary, err := svc.GetSummary(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, uint64(7), summary.TeamID)
	assert.Equal(t, "Mechanical", summary.Name)
	assert.Equal(t, uint64(12), summary.EquipmentCount)
	assert.Equal(t, uint64(6), summary.OpenRequests)
	assert.Equal(t, uint64(9), summary.ByStatus["closed"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
