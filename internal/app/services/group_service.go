package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/repositories"
	"github.com/milad/unitel/internal/pkg/apperrors"
)

// GroupService defines the interface for group operations
type GroupService interface {
	CreateGroup(ctx context.Context, gname string) (*models.Group, error)
	GetGroupByID(ctx context.Context, gid int64) (*dto.GroupResponse, error)
	GetAllGroups(ctx context.Context) ([]*models.Group, error)
	UpdateGroup(ctx context.Context, gid int64, gname string) error
	DeleteGroup(ctx context.Context, gid int64) error
	AddMember(ctx context.Context, gid, empID int64) error
	RemoveMember(ctx context.Context, gid, empID int64) error
}

// groupServiceImpl implements the GroupService interface
type groupServiceImpl struct {
	groupRepo    *repositories.GroupRepository
	employeeRepo *repositories.EmployeeRepository
}

// NewGroupService creates a new group service instance
func NewGroupService(groupRepo *repositories.GroupRepository, employeeRepo *repositories.EmployeeRepository) GroupService {
	return &groupServiceImpl{
		groupRepo:    groupRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateGroup creates a new named group
func (s *groupServiceImpl) CreateGroup(ctx context.Context, gname string) (*models.Group, error) {
	if strings.TrimSpace(gname) == "" {
		return nil, fmt.Errorf("%w: gname cannot be empty", apperrors.ErrValidationFailed)
	}

	group := &models.Group{GName: gname}
	gid, err := s.groupRepo.CreateGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("error creating group: %w", err)
	}
	group.GID = gid
	return group, nil
}

// GetGroupByID retrieves a group and its members
func (s *groupServiceImpl) GetGroupByID(ctx context.Context, gid int64) (*dto.GroupResponse, error) {
	if gid <= 0 {
		return nil, fmt.Errorf("%w: invalid group ID", apperrors.ErrValidationFailed)
	}

	group, err := s.groupRepo.GetGroupByID(ctx, gid)
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}

	members, err := s.groupRepo.GetMembers(ctx, gid)
	if err != nil {
		return nil, fmt.Errorf("error retrieving group members: %w", err)
	}

	return &dto.GroupResponse{Group: *group, Members: members}, nil
}

// GetAllGroups retrieves all groups
func (s *groupServiceImpl) GetAllGroups(ctx context.Context) ([]*models.Group, error) {
	groups, err := s.groupRepo.GetAllGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving groups: %w", err)
	}
	return groups, nil
}

// UpdateGroup renames a group
func (s *groupServiceImpl) UpdateGroup(ctx context.Context, gid int64, gname string) error {
	if gid <= 0 {
		return fmt.Errorf("%w: invalid group ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(gname) == "" {
		return fmt.Errorf("%w: gname cannot be empty", apperrors.ErrValidationFailed)
	}

	err := s.groupRepo.UpdateGroup(ctx, &models.Group{GID: gid, GName: gname})
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("error updating group: %w", err)
	}
	return nil
}

// DeleteGroup deletes a group by ID
func (s *groupServiceImpl) DeleteGroup(ctx context.Context, gid int64) error {
	if gid <= 0 {
		return fmt.Errorf("%w: invalid group ID", apperrors.ErrValidationFailed)
	}

	err := s.groupRepo.DeleteGroup(ctx, gid)
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("error deleting group: %w", err)
	}
	return nil
}

// AddMember adds an employee to a group
func (s *groupServiceImpl) AddMember(ctx context.Context, gid, empID int64) error {
	if gid <= 0 || empID <= 0 {
		return fmt.Errorf("%w: invalid group or employee ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.employeeRepo.GetEmployeeByID(ctx, empID); err != nil {
		return err
	}

	err := s.groupRepo.AddMember(ctx, empID, gid)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) || errors.Is(err, apperrors.ErrGroupNotFound) {
			return err
		}
		return fmt.Errorf("error adding group member: %w", err)
	}
	return nil
}

// RemoveMember removes an employee from a group
func (s *groupServiceImpl) RemoveMember(ctx context.Context, gid, empID int64) error {
	if gid <= 0 || empID <= 0 {
		return fmt.Errorf("%w: invalid group or employee ID", apperrors.ErrValidationFailed)
	}

	err := s.groupRepo.RemoveMember(ctx, empID, gid)
	if err != nil {
		if errors.Is(err, apperrors.ErrMembershipNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("error removing group member: %w", err)
	}
	return nil
}
