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

// GroupRepository handles group and membership database operations
type GroupRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateGroup creates a new named group
func (r *GroupRepository) CreateGroup(ctx context.Context, group *models.Group) (int64, error) {
	sql, args, err := r.sb.Insert("groups").
		Columns("gname").
		Values(group.GName).
		Suffix("RETURNING gid, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create group query: %w", err)
	}

	var gid int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&gid, &group.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Str("gname", group.GName).Msg("Error executing create group query")
		return 0, fmt.Errorf("error creating group: %w", err)
	}

	return gid, nil
}

// GetGroupByID retrieves a group by ID
func (r *GroupRepository) GetGroupByID(ctx context.Context, gid int64) (*models.Group, error) {
	sql, args, err := r.sb.Select("gid", "gname", "created_at").
		From("groups").
		Where(squirrel.Eq{"gid": gid}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get group query: %w", err)
	}

	group := &models.Group{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&group.GID, &group.GName, &group.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGroupNotFound
		}
		logger.Error().Err(err).Int64("gid", gid).Msg("Error scanning group row")
		return nil, fmt.Errorf("error getting group by ID: %w", err)
	}

	return group, nil
}

// GetAllGroups retrieves all groups
func (r *GroupRepository) GetAllGroups(ctx context.Context) ([]*models.Group, error) {
	sql, args, err := r.sb.Select("gid", "gname", "created_at").
		From("groups").
		OrderBy("gid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all groups query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all groups query")
		return nil, fmt.Errorf("error querying groups: %w", err)
	}
	defer rows.Close()

	groups := []*models.Group{}
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.GID, &group.GName, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning group row: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", err)
	}

	return groups, nil
}

// UpdateGroup renames a group
func (r *GroupRepository) UpdateGroup(ctx context.Context, group *models.Group) error {
	sql, args, err := r.sb.Update("groups").
		Set("gname", group.GName).
		Where(squirrel.Eq{"gid": group.GID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update group query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("gid", group.GID).Msg("Error executing update group query")
		return fmt.Errorf("error updating group: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGroupNotFound
	}

	return nil
}

// DeleteGroup deletes a group by ID
func (r *GroupRepository) DeleteGroup(ctx context.Context, gid int64) error {
	sql, args, err := r.sb.Delete("groups").
		Where(squirrel.Eq{"gid": gid}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete group query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("gid", gid).Msg("Error executing delete group query")
		return fmt.Errorf("error deleting group: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGroupNotFound
	}

	return nil
}

// AddMember adds an employee to a group
func (r *GroupRepository) AddMember(ctx context.Context, empID, gid int64) error {
	sql, args, err := r.sb.Insert("group_memberships").
		Columns("emp_id", "gid").
		Values(empID, gid).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add member query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		if isForeignKeyError(err) {
			return apperrors.ErrGroupNotFound
		}
		logger.Error().Err(err).Int64("gid", gid).Int64("empID", empID).Msg("Error executing add member query")
		return fmt.Errorf("error adding group member: %w", err)
	}

	return nil
}

// RemoveMember removes an employee from a group
func (r *GroupRepository) RemoveMember(ctx context.Context, empID, gid int64) error {
	sql, args, err := r.sb.Delete("group_memberships").
		Where(squirrel.Eq{"emp_id": empID, "gid": gid}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("gid", gid).Int64("empID", empID).Msg("Error executing remove member query")
		return fmt.Errorf("error removing group member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMembershipNotFound
	}

	return nil
}

// GetMembers retrieves the directory entries of all employees in a group
func (r *GroupRepository) GetMembers(ctx context.Context, gid int64) ([]models.Colleague, error) {
	sql, args, err := r.sb.Select("e.emp_id", "u.full_name").
		From("group_memberships gm").
		Join("employees e ON e.emp_id = gm.emp_id").
		Join("users u ON u.uid = e.uid").
		Where(squirrel.Eq{"gm.gid": gid}).
		OrderBy("e.emp_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("gid", gid).Msg("Error executing get members query")
		return nil, fmt.Errorf("error querying group members: %w", err)
	}
	defer rows.Close()

	members := []models.Colleague{}
	for rows.Next() {
		var member models.Colleague
		if err := rows.Scan(&member.EmpID, &member.Name); err != nil {
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}
