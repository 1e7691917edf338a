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

// SpaceRepository handles space database operations
type SpaceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSpaceRepository creates a new SpaceRepository
func NewSpaceRepository(db *pgxpool.Pool) *SpaceRepository {
	return &SpaceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateSpace creates a space together with its contactable identity.
func (r *SpaceRepository) CreateSpace(ctx context.Context, space *models.Space) (int64, error) {
	var cid int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, "INSERT INTO contactables DEFAULT VALUES RETURNING cid").Scan(&cid); err != nil {
			return fmt.Errorf("error creating contactable: %w", err)
		}

		sql, args, err := r.sb.Insert("spaces").
			Columns("cid", "sname", "room").
			Values(cid, space.SName, space.Room).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create space query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error creating space: %w", err)
		}

		return nil
	})
	if err != nil {
		logger.Error().Err(err).Str("sname", space.SName).Msg("Error executing create space transaction")
		return 0, err
	}

	return cid, nil
}

// GetSpaceByID retrieves a space by its contactable ID
func (r *SpaceRepository) GetSpaceByID(ctx context.Context, cid int64) (*models.Space, error) {
	sql, args, err := r.sb.Select("cid", "sname", "room").
		From("spaces").
		Where(squirrel.Eq{"cid": cid}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get space query: %w", err)
	}

	space := &models.Space{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&space.CID, &space.SName, &space.Room)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSpaceNotFound
		}
		logger.Error().Err(err).Int64("cid", cid).Msg("Error scanning space row")
		return nil, fmt.Errorf("error getting space by ID: %w", err)
	}

	return space, nil
}

// GetAllSpaces retrieves spaces, optionally windowed by limit/offset.
func (r *SpaceRepository) GetAllSpaces(ctx context.Context, limit, offset int, paged bool) ([]*models.Space, error) {
	builder := r.sb.Select("cid", "sname", "room").
		From("spaces").
		OrderBy("cid ASC")
	if paged {
		builder = builder.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all spaces query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all spaces query")
		return nil, fmt.Errorf("error querying spaces: %w", err)
	}
	defer rows.Close()

	spaces := []*models.Space{}
	for rows.Next() {
		space := &models.Space{}
		if err := rows.Scan(&space.CID, &space.SName, &space.Room); err != nil {
			return nil, fmt.Errorf("error scanning space row: %w", err)
		}
		spaces = append(spaces, space)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating space rows: %w", err)
	}

	return spaces, nil
}

// UpdateSpace updates an existing space
func (r *SpaceRepository) UpdateSpace(ctx context.Context, space *models.Space) error {
	sql, args, err := r.sb.Update("spaces").
		Set("sname", space.SName).
		Set("room", space.Room).
		Where(squirrel.Eq{"cid": space.CID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update space query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("cid", space.CID).Msg("Error executing update space query")
		return fmt.Errorf("error updating space: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSpaceNotFound
	}

	return nil
}

// DeleteSpace deletes a space and its contactable identity.
func (r *SpaceRepository) DeleteSpace(ctx context.Context, cid int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, "DELETE FROM spaces WHERE cid = $1", cid)
		if err != nil {
			return fmt.Errorf("error deleting space: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrSpaceNotFound
		}
		if _, err := tx.Exec(ctx, "DELETE FROM contactables WHERE cid = $1", cid); err != nil {
			return fmt.Errorf("error deleting contactable: %w", err)
		}
		return nil
	})
}
