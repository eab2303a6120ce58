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

const equipmentFields = "id, name, serial_number, category, department, location, maintenance_team_id, status, purchase_date, warranty_until, created_at, updated_at"

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error)
	ScrapEquipment(ctx context.Context, q querier, id uint64) (*entities.Equipment, error)
}

type EquipmentRepository struct {
	storage DB
	logger  *zap.Logger
}

func NewEquipmentRepository(storage DB, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage: storage,
		logger:  logger,
	}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.SerialNumber,
		&e.Category,
		&e.Department,
		&e.Location,
		&e.MaintenanceTeamID,
		&e.Status,
		&e.PurchaseDate,
		&e.WarrantyUntil,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	query, args, err := sq.Select(equipmentFields).
		From("equipment").
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

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}

	return list, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := sq.Select(equipmentFields).
		From("equipment").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	query, args, err := sq.Insert("equipment").
		Columns("name", "serial_number", "category", "department", "location", "maintenance_team_id", "purchase_date", "warranty_until").
		Values(
			equipment.Name,
			equipment.SerialNumber,
			equipment.Category,
			equipment.Department,
			equipment.Location,
			equipment.MaintenanceTeamID,
			equipment.PurchaseDate,
			equipment.WarrantyUntil,
		).
		Suffix("RETURNING " + equipmentFields).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

// ScrapEquipment takes a querier so the workflow engine can run it
// inside the same transaction as the request-status write. The update
// is one-directional: there is no way back to "active".
func (r *EquipmentRepository) ScrapEquipment(ctx context.Context, q querier, id uint64) (*entities.Equipment, error) {
	if q == nil {
		q = r.storage
	}

	query, args, err := sq.Update("equipment").
		Set("status", entities.EquipmentScrapped).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + equipmentFields).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return scanEquipment(q.QueryRow(ctx, query, args...))
}
