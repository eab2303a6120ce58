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

const requestFields = "id, subject, type, equipment_id, team_id, status, description, scheduled_date, requested_by_user_id, created_at, updated_at"

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error)
	GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, request entities.MaintenanceRequest) (*entities.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, q querier, id uint64, status entities.RequestStatus) (*entities.MaintenanceRequest, error)
}

type RequestRepository struct {
	storage DB
	logger  *zap.Logger
}

func NewRequestRepository(storage DB, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{
		storage: storage,
		logger:  logger,
	}
}

func scanRequest(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var m entities.MaintenanceRequest
	err := row.Scan(
		&m.ID,
		&m.Subject,
		&m.Type,
		&m.EquipmentID,
		&m.TeamID,
		&m.Status,
		&m.Description,
		&m.ScheduledDate,
		&m.RequestedByUserID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *RequestRepository) list(ctx context.Context, where interface{}) ([]entities.MaintenanceRequest, error) {
	builder := sq.Select(requestFields).
		From("maintenance_requests").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
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

func (r *RequestRepository) GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	return r.list(ctx, nil)
}

func (r *RequestRepository) GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error) {
	return r.list(ctx, sq.Eq{"equipment_id": equipmentID})
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	query, args, err := sq.Select(requestFields).
		From("maintenance_requests").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return scanRequest(r.storage.QueryRow(ctx, query, args...))
}

func (r *RequestRepository) CreateRequest(ctx context.Context, request entities.MaintenanceRequest) (*entities.MaintenanceRequest, error) {
	query, args, err := sq.Insert("maintenance_requests").
		Columns("subject", "type", "equipment_id", "team_id", "status", "description", "scheduled_date", "requested_by_user_id").
		Values(
			request.Subject,
			request.Type,
			request.EquipmentID,
			request.TeamID,
			request.Status,
			request.Description,
			request.ScheduledDate,
			request.RequestedByUserID,
		).
		Suffix("RETURNING " + requestFields).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return scanRequest(r.storage.QueryRow(ctx, query, args...))
}

// UpdateStatus accepts a querier so the scrap transition can share a
// transaction with the equipment write.
func (r *RequestRepository) UpdateStatus(ctx context.Context, q querier, id uint64, status entities.RequestStatus) (*entities.MaintenanceRequest, error) {
	if q == nil {
		q = r.storage
	}

	query, args, err := sq.Update("maintenance_requests").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + requestFields).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return scanRequest(q.QueryRow(ctx, query, args...))
}
