package repositories

import (
	"context"
	"errors"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindTeam(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error)
	CreateTeam(ctx context.Context, team entities.MaintenanceTeam) (*entities.MaintenanceTeam, error)
	AddMember(ctx context.Context, teamID, userID uint64) error
	RemoveMember(ctx context.Context, teamID, userID uint64) error
	IsMember(ctx context.Context, teamID, userID uint64) (bool, error)
	GetMemberIDs(ctx context.Context, teamID uint64) ([]uint64, error)
}

type TeamRepository struct {
	storage DB
	logger  *zap.Logger
}

func NewTeamRepository(storage DB, logger *zap.Logger) TeamRepositoryInterface {
	return &TeamRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *TeamRepository) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	query, args, err := sq.Select("id", "name", "description", "created_at").
		From("maintenance_teams").
		OrderBy("name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]entities.MaintenanceTeam, 0)
	for rows.Next() {
		var team entities.MaintenanceTeam
		if err := rows.Scan(&team.ID, &team.Name, &team.Description, &team.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error) {
	query, args, err := sq.Select("id", "name", "description", "created_at").
		From("maintenance_teams").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var team entities.MaintenanceTeam
	err = r.storage.QueryRow(ctx, query, args...).Scan(&team.ID, &team.Name, &team.Description, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &team, nil
}

func (r *TeamRepository) CreateTeam(ctx context.Context, team entities.MaintenanceTeam) (*entities.MaintenanceTeam, error) {
	query, args, err := sq.Insert("maintenance_teams").
		Columns("name", "description").
		Values(team.Name, team.Description).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.storage.QueryRow(ctx, query, args...).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &team, nil
}

func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID uint64) error {
	query, args, err := sq.Insert("team_members").
		Columns("team_id", "user_id").
		Values(teamID, userID).
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.Exec(ctx, query, args...)
	return err
}

func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID uint64) error {
	query, args, err := sq.Delete("team_members").
		Where(sq.Eq{"team_id": teamID, "user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) IsMember(ctx context.Context, teamID, userID uint64) (bool, error) {
	query, args, err := sq.Select("1").
		From("team_members").
		Where(sq.Eq{"team_id": teamID, "user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.storage.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *TeamRepository) GetMemberIDs(ctx context.Context, teamID uint64) ([]uint64, error) {
	query, args, err := sq.Select("user_id").
		From("team_members").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("user_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
