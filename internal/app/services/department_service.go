package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/repositories"
	"github.com/milad/unitel/internal/pkg/apperrors"
)

// DepartmentService defines the interface for department-related operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, department *models.Department) (int64, error)
	GetDepartmentByID(ctx context.Context, did int64) (*models.Department, error)
	GetDepartmentsByFacultyID(ctx context.Context, fid int64) ([]*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteDepartment(ctx context.Context, did int64) error
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	departmentRepo *repositories.DepartmentRepository
	facultyRepo    *repositories.FacultyRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository, facultyRepo *repositories.FacultyRepository) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
		facultyRepo:    facultyRepo,
	}
}

// validateDepartment validates department data before database operations
func (s *departmentServiceImpl) validateDepartment(department *models.Department) error {
	if department == nil {
		return fmt.Errorf("%w: department is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(department.DName) == "" {
		return fmt.Errorf("%w: dname cannot be empty", apperrors.ErrValidationFailed)
	}

	if department.FID <= 0 {
		return fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateDepartment creates a new department under an existing faculty
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, department *models.Department) (int64, error) {
	if err := s.validateDepartment(department); err != nil {
		return 0, err
	}

	if _, err := s.facultyRepo.GetFacultyByID(ctx, department.FID); err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return 0, apperrors.ErrFacultyNotFound
		}
		return 0, fmt.Errorf("error verifying faculty: %w", err)
	}

	did, err := s.departmentRepo.CreateDepartment(ctx, department)
	if err != nil {
		return 0, fmt.Errorf("error creating department: %w", err)
	}
	return did, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, did int64) (*models.Department, error) {
	if did <= 0 {
		return nil, fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	department, err := s.departmentRepo.GetDepartmentByID(ctx, did)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return department, nil
}

// GetDepartmentsByFacultyID retrieves all departments of a faculty
func (s *departmentServiceImpl) GetDepartmentsByFacultyID(ctx context.Context, fid int64) ([]*models.Department, error) {
	if fid <= 0 {
		return nil, fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}

	departments, err := s.departmentRepo.GetDepartmentsByFacultyID(ctx, fid)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// GetAllDepartments retrieves all departments
func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAllDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// UpdateDepartment updates an existing department
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}
	if department.DID <= 0 {
		return fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	err := s.departmentRepo.UpdateDepartment(ctx, department)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) || errors.Is(err, apperrors.ErrFacultyNotFound) {
			return err
		}
		return fmt.Errorf("error updating department: %w", err)
	}
	return nil
}

// DeleteDepartment deletes a department by ID
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, did int64) error {
	if did <= 0 {
		return fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	err := s.departmentRepo.DeleteDepartment(ctx, did)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error deleting department: %w", err)
	}
	return nil
}
