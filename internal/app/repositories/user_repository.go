package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/db"
	"github.com/milad/unitel/internal/pkg/apperrors"
	"github.com/milad/unitel/internal/pkg/logger"
)

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateUser inserts a user and its default "ALL" favorite category in one
// transaction, so every account always has a category to pin contacts into.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	var uid int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("users").
			Columns("phone", "full_name", "password").
			Values(user.Phone, user.FullName, user.Password).
			Suffix("RETURNING uid").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create user query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&uid); err != nil {
			if isDuplicateKeyError(err) {
				return apperrors.ErrUserAlreadyExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}

		sql, args, err = r.sb.Insert("favorite_categories").
			Columns("phone", "title").
			Values(user.Phone, "ALL").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build default category query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error creating default favorite category: %w", err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserAlreadyExists) {
			logger.Error().Err(err).Str("phone", user.Phone).Msg("Error executing create user transaction")
		}
		return 0, err
	}

	return uid, nil
}

// GetUserByPhone retrieves a user by phone number
func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	sql, args, err := r.sb.Select("uid", "phone", "full_name", "password").
		From("users").
		Where(squirrel.Eq{"phone": phone}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.UID, &user.Phone, &user.FullName, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("phone", phone).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by phone: %w", err)
	}

	return user, nil
}

// GetUserByUID retrieves a user by uid
func (r *UserRepository) GetUserByUID(ctx context.Context, uid int64) (*models.User, error) {
	sql, args, err := r.sb.Select("uid", "phone", "full_name", "password").
		From("users").
		Where(squirrel.Eq{"uid": uid}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.UID, &user.Phone, &user.FullName, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("uid", uid).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by uid: %w", err)
	}

	return user, nil
}

// GetAllUsers retrieves users, optionally windowed by limit/offset.
func (r *UserRepository) GetAllUsers(ctx context.Context, limit, offset int, paged bool) ([]*models.User, error) {
	builder := r.sb.Select("uid", "phone", "full_name").
		From("users").
		OrderBy("uid ASC")
	if paged {
		builder = builder.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.UID, &user.Phone, &user.FullName); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// UpdateFullName updates a user's display name
func (r *UserRepository) UpdateFullName(ctx context.Context, phone, fullName string) error {
	sql, args, err := r.sb.Update("users").
		Set("full_name", fullName).
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update name query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("phone", phone).Msg("Error executing update name query")
		return fmt.Errorf("error updating user name: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces a user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, phone, passwordHash string) error {
	sql, args, err := r.sb.Update("users").
		Set("password", passwordHash).
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("phone", phone).Msg("Error executing update password query")
		return fmt.Errorf("error updating user password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeleteUserByPhone deletes a user by phone number
func (r *UserRepository) DeleteUserByPhone(ctx context.Context, phone string) error {
	sql, args, err := r.sb.Delete("users").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("phone", phone).Msg("Error executing delete user query")
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
