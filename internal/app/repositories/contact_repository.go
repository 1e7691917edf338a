package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/pkg/apperrors"
	"github.com/milad/unitel/internal/pkg/logger"
)

// ContactRepository provides the read queries behind related-contacts
// resolution. Everything here is derived data; writes belong to the
// entity-specific repositories.
type ContactRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetEmployeeProfile loads an employee with its classification context and
// post assignments in two queries. The first eager-loads the faculty chain
// (facultyMember -> department -> faculty) and the non-faculty row side by
// side; whichever side is absent comes back as NULLs.
func (r *ContactRepository) GetEmployeeProfile(ctx context.Context, empID int64) (*models.EmployeeProfile, error) {
	sql, args, err := r.sb.Select(
		"e.emp_id", "u.full_name",
		"d.did", "d.dname", "f.fid", "f.fname",
		"nfm.emp_id", "nfm.workarea").
		From("employees e").
		Join("users u ON u.uid = e.uid").
		LeftJoin("faculty_members fm ON fm.emp_id = e.emp_id").
		LeftJoin("departments d ON d.did = fm.did").
		LeftJoin("faculties f ON f.fid = d.fid").
		LeftJoin("non_faculty_members nfm ON nfm.emp_id = e.emp_id").
		Where(squirrel.Eq{"e.emp_id": empID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build employee profile query: %w", err)
	}

	profile := &models.EmployeeProfile{}
	var (
		did, fid     *int64
		dname, fname *string
		nfmEmpID     *int64
		workarea     *string
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.EmpID, &profile.FullName,
		&did, &dname, &fid, &fname,
		&nfmEmpID, &workarea)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		logger.Error().Err(err).Int64("empID", empID).Msg("Error scanning employee profile row")
		return nil, fmt.Errorf("error loading employee profile: %w", err)
	}

	if did != nil && fid != nil && dname != nil && fname != nil {
		profile.Faculty = &models.FacultyContext{DID: *did, DName: *dname, FID: *fid, FName: *fname}
	}
	if nfmEmpID != nil {
		profile.NonFaculty = &models.NonFacultyMember{EmpID: *nfmEmpID, Workarea: workarea}
	}

	esps, err := r.getEmployeeESPs(ctx, empID)
	if err != nil {
		return nil, err
	}
	profile.ESPs = esps

	return profile, nil
}

func (r *ContactRepository) getEmployeeESPs(ctx context.Context, empID int64) ([]models.ESPWithPost, error) {
	sql, args, err := r.sb.Select("esp.sid", "esp.pid", "p.pname").
		From("esps esp").
		Join("posts p ON p.cid = esp.pid").
		Where(squirrel.Eq{"esp.emp_id": empID}).
		OrderBy("esp.sid ASC", "esp.pid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build employee assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("empID", empID).Msg("Error executing employee assignments query")
		return nil, fmt.Errorf("error querying employee assignments: %w", err)
	}
	defer rows.Close()

	esps := []models.ESPWithPost{}
	for rows.Next() {
		var esp models.ESPWithPost
		if err := rows.Scan(&esp.SID, &esp.PID, &esp.PName); err != nil {
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		esps = append(esps, esp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return esps, nil
}

// ListFacultyColleagues returns every classified academic employee in a
// faculty except the caller, with the department each belongs to. Rows come
// back in emp_id order so department grouping downstream is deterministic.
func (r *ContactRepository) ListFacultyColleagues(ctx context.Context, fid, excludeEmpID int64) ([]models.FacultyColleague, error) {
	sql, args, err := r.sb.Select("e.emp_id", "u.full_name", "d.did", "d.dname").
		From("faculty_members fm").
		Join("employees e ON e.emp_id = fm.emp_id").
		Join("users u ON u.uid = e.uid").
		Join("departments d ON d.did = fm.did").
		Where(squirrel.Eq{"d.fid": fid}).
		Where(squirrel.NotEq{"e.emp_id": excludeEmpID}).
		OrderBy("e.emp_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build faculty colleagues query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("fid", fid).Msg("Error executing faculty colleagues query")
		return nil, fmt.Errorf("error querying faculty colleagues: %w", err)
	}
	defer rows.Close()

	colleagues := []models.FacultyColleague{}
	for rows.Next() {
		var c models.FacultyColleague
		if err := rows.Scan(&c.EmpID, &c.Name, &c.DID, &c.DName); err != nil {
			return nil, fmt.Errorf("error scanning faculty colleague row: %w", err)
		}
		colleagues = append(colleagues, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty colleague rows: %w", err)
	}

	return colleagues, nil
}

// ListFacultyPosts returns the posts held by at least one academic employee
// of the faculty.
func (r *ContactRepository) ListFacultyPosts(ctx context.Context, fid int64) ([]dto.PostEntry, error) {
	sql, args, err := r.sb.Select("p.cid", "p.pname", "p.description").
		From("posts p").
		Where(`EXISTS (
			SELECT 1 FROM esps esp
			JOIN faculty_members fm ON fm.emp_id = esp.emp_id
			JOIN departments d ON d.did = fm.did
			WHERE esp.pid = p.cid AND d.fid = ?
		)`, fid).
		OrderBy("p.cid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build faculty posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("fid", fid).Msg("Error executing faculty posts query")
		return nil, fmt.Errorf("error querying faculty posts: %w", err)
	}
	defer rows.Close()

	return scanPostEntries(rows)
}

// ListFacultySpaces returns the spaces occupied by at least one academic
// employee of the faculty.
func (r *ContactRepository) ListFacultySpaces(ctx context.Context, fid int64) ([]dto.SpaceEntry, error) {
	sql, args, err := r.sb.Select("s.cid", "s.sname", "s.room").
		From("spaces s").
		Where(`EXISTS (
			SELECT 1 FROM esps esp
			JOIN faculty_members fm ON fm.emp_id = esp.emp_id
			JOIN departments d ON d.did = fm.did
			WHERE esp.sid = s.cid AND d.fid = ?
		)`, fid).
		OrderBy("s.cid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build faculty spaces query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("fid", fid).Msg("Error executing faculty spaces query")
		return nil, fmt.Errorf("error querying faculty spaces: %w", err)
	}
	defer rows.Close()

	return scanSpaceEntries(rows)
}

// ListWorkAreaColleagues returns the administrative employees sharing an
// exact work area label, except the caller.
func (r *ContactRepository) ListWorkAreaColleagues(ctx context.Context, workarea string, excludeEmpID int64) ([]models.Colleague, error) {
	sql, args, err := r.sb.Select("e.emp_id", "u.full_name").
		From("non_faculty_members nfm").
		Join("employees e ON e.emp_id = nfm.emp_id").
		Join("users u ON u.uid = e.uid").
		Where(squirrel.Eq{"nfm.workarea": workarea}).
		Where(squirrel.NotEq{"e.emp_id": excludeEmpID}).
		OrderBy("e.emp_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build work area colleagues query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("workarea", workarea).Msg("Error executing work area colleagues query")
		return nil, fmt.Errorf("error querying work area colleagues: %w", err)
	}
	defer rows.Close()

	return scanColleagues(rows)
}

// ListPostColleagues returns every employee holding any of the given posts,
// except the caller. DISTINCT collapses employees who hold more than one of
// the posts.
func (r *ContactRepository) ListPostColleagues(ctx context.Context, postIDs []int64, excludeEmpID int64) ([]models.Colleague, error) {
	if len(postIDs) == 0 {
		return []models.Colleague{}, nil
	}

	sql, args, err := r.sb.Select("DISTINCT e.emp_id", "u.full_name").
		From("esps esp").
		Join("employees e ON e.emp_id = esp.emp_id").
		Join("users u ON u.uid = e.uid").
		Where(squirrel.Eq{"esp.pid": postIDs}).
		Where(squirrel.NotEq{"e.emp_id": excludeEmpID}).
		OrderBy("e.emp_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build post colleagues query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("excludeEmpID", excludeEmpID).Msg("Error executing post colleagues query")
		return nil, fmt.Errorf("error querying post colleagues: %w", err)
	}
	defer rows.Close()

	return scanColleagues(rows)
}

// ListRecentEmployees returns the newest employees as directory entries,
// newest first.
func (r *ContactRepository) ListRecentEmployees(ctx context.Context, limit int) ([]models.Colleague, error) {
	sql, args, err := r.sb.Select("e.emp_id", "u.full_name").
		From("employees e").
		Join("users u ON u.uid = e.uid").
		OrderBy("e.emp_id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent employees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent employees query")
		return nil, fmt.Errorf("error querying recent employees: %w", err)
	}
	defer rows.Close()

	return scanColleagues(rows)
}

// ListRecentPosts returns the newest posts, newest first.
func (r *ContactRepository) ListRecentPosts(ctx context.Context, limit int) ([]dto.PostEntry, error) {
	sql, args, err := r.sb.Select("cid", "pname", "description").
		From("posts").
		OrderBy("cid DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent posts query")
		return nil, fmt.Errorf("error querying recent posts: %w", err)
	}
	defer rows.Close()

	return scanPostEntries(rows)
}

// ListRecentSpaces returns the newest spaces, newest first.
func (r *ContactRepository) ListRecentSpaces(ctx context.Context, limit int) ([]dto.SpaceEntry, error) {
	sql, args, err := r.sb.Select("cid", "sname", "room").
		From("spaces").
		OrderBy("cid DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent spaces query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent spaces query")
		return nil, fmt.Errorf("error querying recent spaces: %w", err)
	}
	defer rows.Close()

	return scanSpaceEntries(rows)
}

func scanColleagues(rows pgx.Rows) ([]models.Colleague, error) {
	colleagues := []models.Colleague{}
	for rows.Next() {
		var c models.Colleague
		if err := rows.Scan(&c.EmpID, &c.Name); err != nil {
			return nil, fmt.Errorf("error scanning colleague row: %w", err)
		}
		colleagues = append(colleagues, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating colleague rows: %w", err)
	}
	return colleagues, nil
}

func scanPostEntries(rows pgx.Rows) ([]dto.PostEntry, error) {
	posts := []dto.PostEntry{}
	for rows.Next() {
		var p dto.PostEntry
		if err := rows.Scan(&p.PID, &p.PName, &p.Description); err != nil {
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}
	return posts, nil
}

func scanSpaceEntries(rows pgx.Rows) ([]dto.SpaceEntry, error) {
	spaces := []dto.SpaceEntry{}
	for rows.Next() {
		var s dto.SpaceEntry
		if err := rows.Scan(&s.SID, &s.SName, &s.Room); err != nil {
			return nil, fmt.Errorf("error scanning space row: %w", err)
		}
		spaces = append(spaces, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating space rows: %w", err)
	}
	return spaces, nil
}
