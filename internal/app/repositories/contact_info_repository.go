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

// ContactInfoRepository handles contact line database operations
type ContactInfoRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContactInfoRepository creates a new ContactInfoRepository
func NewContactInfoRepository(db *pgxpool.Pool) *ContactInfoRepository {
	return &ContactInfoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateContactInfo attaches a phone line to a contactable
func (r *ContactInfoRepository) CreateContactInfo(ctx context.Context, info *models.ContactInfo) error {
	sql, args, err := r.sb.Insert("contact_infos").
		Columns("phone_number", "range", "subrange", "forward", "extension", "cid").
		Values(info.PhoneNumber, info.Range, info.Subrange, info.Forward, info.Extension, info.CID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create contact info query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrContactInfoExists
		}
		if isForeignKeyError(err) {
			return apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("phoneNumber", info.PhoneNumber).Msg("Error executing create contact info query")
		return fmt.Errorf("error creating contact info: %w", err)
	}

	return nil
}

// GetContactInfoByNumber retrieves a contact line by phone number
func (r *ContactInfoRepository) GetContactInfoByNumber(ctx context.Context, phoneNumber string) (*models.ContactInfo, error) {
	sql, args, err := r.sb.Select("phone_number", "range", "subrange", "forward", "extension", "cid").
		From("contact_infos").
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get contact info query: %w", err)
	}

	info := &models.ContactInfo{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&info.PhoneNumber, &info.Range, &info.Subrange, &info.Forward, &info.Extension, &info.CID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContactInfoNotFound
		}
		logger.Error().Err(err).Str("phoneNumber", phoneNumber).Msg("Error scanning contact info row")
		return nil, fmt.Errorf("error getting contact info: %w", err)
	}

	return info, nil
}

// GetContactInfosByCID retrieves all contact lines attached to a contactable
func (r *ContactInfoRepository) GetContactInfosByCID(ctx context.Context, cid int64) ([]*models.ContactInfo, error) {
	sql, args, err := r.sb.Select("phone_number", "range", "subrange", "forward", "extension", "cid").
		From("contact_infos").
		Where(squirrel.Eq{"cid": cid}).
		OrderBy("phone_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get contact infos query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("cid", cid).Msg("Error executing get contact infos query")
		return nil, fmt.Errorf("error querying contact infos: %w", err)
	}
	defer rows.Close()

	infos := []*models.ContactInfo{}
	for rows.Next() {
		info := &models.ContactInfo{}
		if err := rows.Scan(&info.PhoneNumber, &info.Range, &info.Subrange, &info.Forward, &info.Extension, &info.CID); err != nil {
			return nil, fmt.Errorf("error scanning contact info row: %w", err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact info rows: %w", err)
	}

	return infos, nil
}

// UpdateContactInfo updates the routing fields of a contact line
func (r *ContactInfoRepository) UpdateContactInfo(ctx context.Context, info *models.ContactInfo) error {
	sql, args, err := r.sb.Update("contact_infos").
		Set("range", info.Range).
		Set("subrange", info.Subrange).
		Set("forward", info.Forward).
		Set("extension", info.Extension).
		Set("cid", info.CID).
		Where(squirrel.Eq{"phone_number": info.PhoneNumber}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update contact info query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("phoneNumber", info.PhoneNumber).Msg("Error executing update contact info query")
		return fmt.Errorf("error updating contact info: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContactInfoNotFound
	}

	return nil
}

// DeleteContactInfo deletes a contact line by phone number
func (r *ContactInfoRepository) DeleteContactInfo(ctx context.Context, phoneNumber string) error {
	sql, args, err := r.sb.Delete("contact_infos").
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete contact info query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("phoneNumber", phoneNumber).Msg("Error executing delete contact info query")
		return fmt.Errorf("error deleting contact info: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContactInfoNotFound
	}

	return nil
}
