package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/pkg/apperrors"
	"github.com/milad/unitel/internal/pkg/logger"
)

// ESPRepository handles employee-space-post assignment database operations
type ESPRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewESPRepository creates a new ESPRepository
func NewESPRepository(db *pgxpool.Pool) *ESPRepository {
	return &ESPRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateESP assigns an employee to a (space, post) pair
func (r *ESPRepository) CreateESP(ctx context.Context, esp *models.ESP) error {
	sql, args, err := r.sb.Insert("esps").
		Columns("emp_id", "sid", "pid").
		Values(esp.EmpID, esp.SID, esp.PID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create assignment query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrESPAlreadyExists
		}
		if isForeignKeyError(err) {
			return apperrors.ErrESPNotFound
		}
		logger.Error().Err(err).Int64("empID", esp.EmpID).Msg("Error executing create assignment query")
		return fmt.Errorf("error creating assignment: %w", err)
	}

	return nil
}

// GetESPsByEmployee retrieves all assignments held by an employee, in
// assignment table order.
func (r *ESPRepository) GetESPsByEmployee(ctx context.Context, empID int64) ([]*models.ESP, error) {
	sql, args, err := r.sb.Select("emp_id", "sid", "pid").
		From("esps").
		Where(squirrel.Eq{"emp_id": empID}).
		OrderBy("sid ASC", "pid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("empID", empID).Msg("Error executing get assignments query")
		return nil, fmt.Errorf("error querying assignments: %w", err)
	}
	defer rows.Close()

	esps := []*models.ESP{}
	for rows.Next() {
		esp := &models.ESP{}
		if err := rows.Scan(&esp.EmpID, &esp.SID, &esp.PID); err != nil {
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		esps = append(esps, esp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return esps, nil
}

// DeleteESP removes one assignment identified by its full composite key
func (r *ESPRepository) DeleteESP(ctx context.Context, esp *models.ESP) error {
	sql, args, err := r.sb.Delete("esps").
		Where(squirrel.Eq{"emp_id": esp.EmpID, "sid": esp.SID, "pid": esp.PID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete assignment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("empID", esp.EmpID).Msg("Error executing delete assignment query")
		return fmt.Errorf("error deleting assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrESPNotFound
	}

	return nil
}
