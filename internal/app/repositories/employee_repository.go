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

// EmployeeRepository handles employee and classification database operations
type EmployeeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateEmployee creates an employee together with its contactable identity.
// The referenced user must already exist; both inserts run in one
// transaction so a failed employee insert never leaks an orphan contactable.
func (r *EmployeeRepository) CreateEmployee(ctx context.Context, employee *models.Employee) (int64, error) {
	var empID int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var cid int64
		if err := tx.QueryRow(ctx, "INSERT INTO contactables DEFAULT VALUES RETURNING cid").Scan(&cid); err != nil {
			return fmt.Errorf("error creating contactable: %w", err)
		}

		sql, args, err := r.sb.Insert("employees").
			Columns("cid", "uid", "phone", "national_code", "personel_no").
			Values(cid, employee.UID, employee.Phone, employee.NationalCode, employee.PersonelNo).
			Suffix("RETURNING emp_id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create employee query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&empID); err != nil {
			if isDuplicateKeyError(err) {
				return apperrors.ErrEmployeeAlreadyExists
			}
			if isForeignKeyError(err) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error creating employee: %w", err)
		}

		employee.CID = cid
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrEmployeeAlreadyExists) && !errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Error().Err(err).Str("phone", employee.Phone).Msg("Error executing create employee transaction")
		}
		return 0, err
	}

	return empID, nil
}

// GetEmployeeByID retrieves an employee by ID
func (r *EmployeeRepository) GetEmployeeByID(ctx context.Context, empID int64) (*models.Employee, error) {
	sql, args, err := r.sb.Select("emp_id", "cid", "uid", "phone", "national_code", "personel_no").
		From("employees").
		Where(squirrel.Eq{"emp_id": empID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get employee query: %w", err)
	}

	return r.scanEmployee(r.db.QueryRow(ctx, sql, args...), empID)
}

// GetEmployeeByUID retrieves the employee record backed by a user account
func (r *EmployeeRepository) GetEmployeeByUID(ctx context.Context, uid int64) (*models.Employee, error) {
	sql, args, err := r.sb.Select("emp_id", "cid", "uid", "phone", "national_code", "personel_no").
		From("employees").
		Where(squirrel.Eq{"uid": uid}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get employee query: %w", err)
	}

	return r.scanEmployee(r.db.QueryRow(ctx, sql, args...), uid)
}

func (r *EmployeeRepository) scanEmployee(row pgx.Row, key int64) (*models.Employee, error) {
	employee := &models.Employee{}
	err := row.Scan(&employee.EmpID, &employee.CID, &employee.UID, &employee.Phone, &employee.NationalCode, &employee.PersonelNo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		logger.Error().Err(err).Int64("key", key).Msg("Error scanning employee row")
		return nil, fmt.Errorf("error getting employee: %w", err)
	}
	return employee, nil
}

// GetAllEmployees retrieves employees, optionally windowed by limit/offset.
func (r *EmployeeRepository) GetAllEmployees(ctx context.Context, limit, offset int, paged bool) ([]*models.Employee, error) {
	builder := r.sb.Select("emp_id", "cid", "uid", "phone", "national_code", "personel_no").
		From("employees").
		OrderBy("emp_id ASC")
	if paged {
		builder = builder.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all employees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all employees query")
		return nil, fmt.Errorf("error querying employees: %w", err)
	}
	defer rows.Close()

	employees := []*models.Employee{}
	for rows.Next() {
		employee := &models.Employee{}
		if err := rows.Scan(&employee.EmpID, &employee.CID, &employee.UID, &employee.Phone, &employee.NationalCode, &employee.PersonelNo); err != nil {
			return nil, fmt.Errorf("error scanning employee row: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return employees, nil
}

// DeleteEmployee deletes an employee by ID
func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, empID int64) error {
	sql, args, err := r.sb.Delete("employees").
		Where(squirrel.Eq{"emp_id": empID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete employee query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("empID", empID).Msg("Error executing delete employee query")
		return fmt.Errorf("error deleting employee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	return nil
}

// SetFacultyMember classifies an employee as academic staff in a department.
// An employee can hold at most one classification of either kind.
func (r *EmployeeRepository) SetFacultyMember(ctx context.Context, empID, did int64) error {
	exists, err := r.hasClassification(ctx, empID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrClassificationExists
	}

	sql, args, err := r.sb.Insert("faculty_members").
		Columns("emp_id", "did").
		Values(empID, did).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set faculty member query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrClassificationExists
		}
		if isForeignKeyError(err) {
			return apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Int64("empID", empID).Msg("Error executing set faculty member query")
		return fmt.Errorf("error setting faculty member: %w", err)
	}

	return nil
}

// SetNonFacultyMember classifies an employee as administrative staff.
func (r *EmployeeRepository) SetNonFacultyMember(ctx context.Context, empID int64, workarea *string) error {
	exists, err := r.hasClassification(ctx, empID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrClassificationExists
	}

	sql, args, err := r.sb.Insert("non_faculty_members").
		Columns("emp_id", "workarea").
		Values(empID, workarea).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set non-faculty member query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrClassificationExists
		}
		if isForeignKeyError(err) {
			return apperrors.ErrEmployeeNotFound
		}
		logger.Error().Err(err).Int64("empID", empID).Msg("Error executing set non-faculty member query")
		return fmt.Errorf("error setting non-faculty member: %w", err)
	}

	return nil
}

func (r *EmployeeRepository) hasClassification(ctx context.Context, empID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM faculty_members WHERE emp_id = $1)
		     OR EXISTS (SELECT 1 FROM non_faculty_members WHERE emp_id = $1)`,
		empID).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Int64("empID", empID).Msg("Error checking employee classification")
		return false, fmt.Errorf("error checking classification: %w", err)
	}
	return exists, nil
}

// ClearClassification drops whichever classification row the employee has.
func (r *EmployeeRepository) ClearClassification(ctx context.Context, empID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		fac, err := tx.Exec(ctx, "DELETE FROM faculty_members WHERE emp_id = $1", empID)
		if err != nil {
			return fmt.Errorf("error clearing faculty classification: %w", err)
		}
		nonFac, err := tx.Exec(ctx, "DELETE FROM non_faculty_members WHERE emp_id = $1", empID)
		if err != nil {
			return fmt.Errorf("error clearing non-faculty classification: %w", err)
		}
		if fac.RowsAffected() == 0 && nonFac.RowsAffected() == 0 {
			return apperrors.ErrEmployeeNotFound
		}
		return nil
	})
}
