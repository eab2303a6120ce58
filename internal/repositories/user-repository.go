package repositories

import (
	"context"
	"errors"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

var ErrEmailTaken = errors.New("email already exists")

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
}

type UserRepository struct {
	storage DB
	logger  *zap.Logger
}

func NewUserRepository(storage DB, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	query, args, err := sq.Insert("users").
		Columns("email", "password_hash", "name", "role").
		Values(user.Email, user.PasswordHash, user.Name, user.Role).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.storage.QueryRow(ctx, query, args...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email})
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.findUser(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) findUser(ctx context.Context, where sq.Eq) (*entities.User, error) {
	query, args, err := sq.Select("id", "email", "password_hash", "name", "role", "created_at").
		From("users").
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user entities.User
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}
