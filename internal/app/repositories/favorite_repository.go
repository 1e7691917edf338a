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

// FavoriteRepository handles favorite category and pin database operations
type FavoriteRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateCategory creates a favorite category owned by a phone number
func (r *FavoriteRepository) CreateCategory(ctx context.Context, category *models.FavoriteCategory) (int64, error) {
	sql, args, err := r.sb.Insert("favorite_categories").
		Columns("title", "phone").
		Values(category.Title, category.Phone).
		Suffix("RETURNING favcat_id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create category query: %w", err)
	}

	var favcatID int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&favcatID, &category.CreatedAt)
	if err != nil {
		if isForeignKeyError(err) {
			return 0, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("phone", category.Phone).Msg("Error executing create category query")
		return 0, fmt.Errorf("error creating favorite category: %w", err)
	}

	return favcatID, nil
}

// GetCategoryByID retrieves a favorite category by ID
func (r *FavoriteRepository) GetCategoryByID(ctx context.Context, favcatID int64) (*models.FavoriteCategory, error) {
	sql, args, err := r.sb.Select("favcat_id", "title", "created_at", "phone").
		From("favorite_categories").
		Where(squirrel.Eq{"favcat_id": favcatID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get category query: %w", err)
	}

	category := &models.FavoriteCategory{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&category.FavcatID, &category.Title, &category.CreatedAt, &category.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		logger.Error().Err(err).Int64("favcatID", favcatID).Msg("Error scanning category row")
		return nil, fmt.Errorf("error getting favorite category: %w", err)
	}

	return category, nil
}

// GetCategoriesByPhone retrieves all categories owned by a phone number
func (r *FavoriteRepository) GetCategoriesByPhone(ctx context.Context, phone string) ([]*models.FavoriteCategory, error) {
	sql, args, err := r.sb.Select("favcat_id", "title", "created_at", "phone").
		From("favorite_categories").
		Where(squirrel.Eq{"phone": phone}).
		OrderBy("favcat_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get categories query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("phone", phone).Msg("Error executing get categories query")
		return nil, fmt.Errorf("error querying favorite categories: %w", err)
	}
	defer rows.Close()

	categories := []*models.FavoriteCategory{}
	for rows.Next() {
		category := &models.FavoriteCategory{}
		if err := rows.Scan(&category.FavcatID, &category.Title, &category.CreatedAt, &category.Phone); err != nil {
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return categories, nil
}

// DeleteCategory deletes a favorite category by ID
func (r *FavoriteRepository) DeleteCategory(ctx context.Context, favcatID int64) error {
	sql, args, err := r.sb.Delete("favorite_categories").
		Where(squirrel.Eq{"favcat_id": favcatID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete category query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("favcatID", favcatID).Msg("Error executing delete category query")
		return fmt.Errorf("error deleting favorite category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

// AddFavorite pins a contactable into a category
func (r *FavoriteRepository) AddFavorite(ctx context.Context, cid, favcatID int64) error {
	sql, args, err := r.sb.Insert("favorites").
		Columns("cid", "favcat_id").
		Values(cid, favcatID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add favorite query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrFavoriteExists
		}
		if isForeignKeyError(err) {
			return apperrors.ErrCategoryNotFound
		}
		logger.Error().Err(err).Int64("cid", cid).Int64("favcatID", favcatID).Msg("Error executing add favorite query")
		return fmt.Errorf("error adding favorite: %w", err)
	}

	return nil
}

// RemoveFavorite unpins a contactable from a category
func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, cid, favcatID int64) error {
	sql, args, err := r.sb.Delete("favorites").
		Where(squirrel.Eq{"cid": cid, "favcat_id": favcatID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove favorite query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("cid", cid).Int64("favcatID", favcatID).Msg("Error executing remove favorite query")
		return fmt.Errorf("error removing favorite: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFavoriteNotFound
	}

	return nil
}

// GetFavoritesByCategory retrieves the contactable ids pinned in a category
func (r *FavoriteRepository) GetFavoritesByCategory(ctx context.Context, favcatID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("cid").
		From("favorites").
		Where(squirrel.Eq{"favcat_id": favcatID}).
		OrderBy("cid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get favorites query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("favcatID", favcatID).Msg("Error executing get favorites query")
		return nil, fmt.Errorf("error querying favorites: %w", err)
	}
	defer rows.Close()

	cids := []int64{}
	for rows.Next() {
		var cid int64
		if err := rows.Scan(&cid); err != nil {
			return nil, fmt.Errorf("error scanning favorite row: %w", err)
		}
		cids = append(cids, cid)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorite rows: %w", err)
	}

	return cids, nil
}
