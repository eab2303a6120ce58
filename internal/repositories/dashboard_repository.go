package repositories

import (
	"context"

	"gearguard/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type DashboardRepositoryInterface interface {
	CountRequestsByStatus(ctx context.Context, teamID uint64) (map[string]uint64, error)
	CountEquipment(ctx context.Context, teamID uint64) (uint64, error)
	GetOverdueRequests(ctx context.Context) ([]entities.MaintenanceRequest, error)
}

type DashboardRepository struct {
	storage DB
	logger  *zap.Logger
}

func NewDashboardRepository(storage DB, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *DashboardRepository) CountRequestsByStatus(ctx context.Context, teamID uint64) (map[string]uint64, error) {
	query, args, err := sq.Select("status", "COUNT(*)").
		From("maintenance_requests").
		Where(sq.Eq{"team_id": teamID}).
		GroupBy("status").
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

	counts := make(map[string]uint64)
	for rows.Next() {
		var status string
		var count uint64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

func (r *DashboardRepository) CountEquipment(ctx context.Context, teamID uint64) (uint64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("equipment").
		Where(sq.Eq{"maintenance_team_id": teamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// GetOverdueRequests returns preventive requests whose scheduled date
// has passed while the request is still open.
func (r *DashboardRepository) GetOverdueRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	query, args, err := sq.Select(requestFields).
		From("maintenance_requests").
		Where("scheduled_date < now()").
		Where(sq.NotEq{"status": []string{string(entities.StatusRepaired), string(entities.StatusScrap)}}).
		OrderBy("scheduled_date").
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

	list := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		m, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *m)
	}

	return list, rows.Err()
}
