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

// DepartmentRepository handles department database operations
type DepartmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateDepartment creates a new department under a faculty
func (r *DepartmentRepository) CreateDepartment(ctx context.Context, department *models.Department) (int64, error) {
	sql, args, err := r.sb.Insert("departments").
		Columns("dname", "fid").
		Values(department.DName, department.FID).
		Suffix("RETURNING did").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create department query: %w", err)
	}

	var did int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&did)
	if err != nil {
		if isForeignKeyError(err) {
			return 0, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Msg("Error executing create department query")
		return 0, fmt.Errorf("error creating department: %w", err)
	}

	return did, nil
}

// GetDepartmentByID retrieves a department by ID
func (r *DepartmentRepository) GetDepartmentByID(ctx context.Context, did int64) (*models.Department, error) {
	sql, args, err := r.sb.Select("did", "dname", "fid").
		From("departments").
		Where(squirrel.Eq{"did": did}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	department := &models.Department{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&department.DID, &department.DName, &department.FID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Int64("did", did).Msg("Error scanning department row")
		return nil, fmt.Errorf("error getting department by ID: %w", err)
	}

	return department, nil
}

// GetDepartmentsByFacultyID retrieves all departments belonging to a faculty
func (r *DepartmentRepository) GetDepartmentsByFacultyID(ctx context.Context, fid int64) ([]*models.Department, error) {
	sql, args, err := r.sb.Select("did", "dname", "fid").
		From("departments").
		Where(squirrel.Eq{"fid": fid}).
		OrderBy("did ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get departments query: %w", err)
	}

	return r.queryDepartments(ctx, sql, args)
}

// GetAllDepartments retrieves all departments
func (r *DepartmentRepository) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	sql, args, err := r.sb.Select("did", "dname", "fid").
		From("departments").
		OrderBy("did ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all departments query: %w", err)
	}

	return r.queryDepartments(ctx, sql, args)
}

func (r *DepartmentRepository) queryDepartments(ctx context.Context, sql string, args []interface{}) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing departments query")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		department := &models.Department{}
		if err := rows.Scan(&department.DID, &department.DName, &department.FID); err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}

// UpdateDepartment updates an existing department
func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Update("departments").
		Set("dname", department.DName).
		Set("fid", department.FID).
		Where(squirrel.Eq{"did": department.DID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isForeignKeyError(err) {
			return apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("did", department.DID).Msg("Error executing update department query")
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// DeleteDepartment deletes a department by ID
func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, did int64) error {
	sql, args, err := r.sb.Delete("departments").
		Where(squirrel.Eq{"did": did}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("did", did).Msg("Error executing delete department query")
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
