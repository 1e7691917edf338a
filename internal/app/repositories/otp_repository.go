package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/pkg/apperrors"
	"github.com/milad/unitel/internal/pkg/logger"
)

// OTPRepository handles one-time code database operations
type OTPRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOTPRepository creates a new OTPRepository
func NewOTPRepository(db *pgxpool.Pool) *OTPRepository {
	return &OTPRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetLatestByPhone retrieves the most recent code for a phone number.
func (r *OTPRepository) GetLatestByPhone(ctx context.Context, phone string) (*models.OTP, error) {
	sql, args, err := r.sb.Select("id", "code", "phone", "expires_at", "created_at").
		From("otps").
		Where(squirrel.Eq{"phone": phone}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get otp query: %w", err)
	}

	otp := &models.OTP{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&otp.ID, &otp.Code, &otp.Phone, &otp.ExpiresAt, &otp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOTPNotFound
		}
		logger.Error().Err(err).Str("phone", phone).Msg("Error scanning otp row")
		return nil, fmt.Errorf("error getting otp by phone: %w", err)
	}

	return otp, nil
}

// Create stores a fresh code for a phone number.
func (r *OTPRepository) Create(ctx context.Context, otp *models.OTP) (int64, error) {
	sql, args, err := r.sb.Insert("otps").
		Columns("code", "phone", "expires_at", "created_at").
		Values(otp.Code, otp.Phone, otp.ExpiresAt, otp.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create otp query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			// The unique phone constraint doubles as the cooldown guard
			return 0, apperrors.ErrOTPCooldown
		}
		logger.Error().Err(err).Str("phone", otp.Phone).Msg("Error executing create otp query")
		return 0, fmt.Errorf("error creating otp: %w", err)
	}

	return id, nil
}

// DeleteByID removes a consumed or stale code.
func (r *OTPRepository) DeleteByID(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("otps").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete otp query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("otpID", id).Msg("Error executing delete otp query")
		return fmt.Errorf("error deleting otp: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOTPNotFound
	}

	return nil
}
