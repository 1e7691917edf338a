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

// EmployeeService defines the interface for employee and classification
// operations
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (int64, error)
	GetEmployeeByID(ctx context.Context, empID int64) (*dto.EmployeeResponse, error)
	GetAllEmployees(ctx context.Context, limit, offset int, paged bool) ([]*models.Employee, error)
	DeleteEmployee(ctx context.Context, empID int64) error
	SetFacultyMember(ctx context.Context, empID, did int64) error
	SetNonFacultyMember(ctx context.Context, empID int64, workarea *string) error
	ClearClassification(ctx context.Context, empID int64) error
}

// employeeServiceImpl implements the EmployeeService interface
type employeeServiceImpl struct {
	employeeRepo   *repositories.EmployeeRepository
	userRepo       *repositories.UserRepository
	departmentRepo *repositories.DepartmentRepository
	espRepo        *repositories.ESPRepository
	contactRepo    *repositories.ContactRepository
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(
	employeeRepo *repositories.EmployeeRepository,
	userRepo *repositories.UserRepository,
	departmentRepo *repositories.DepartmentRepository,
	espRepo *repositories.ESPRepository,
	contactRepo *repositories.ContactRepository,
) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		espRepo:        espRepo,
		contactRepo:    contactRepo,
	}
}

// CreateEmployee promotes an existing user to an employee
func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (int64, error) {
	if req == nil {
		return 0, fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}
	if req.UID <= 0 {
		return 0, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return 0, fmt.Errorf("%w: phone cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.userRepo.GetUserByUID(ctx, req.UID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error verifying user: %w", err)
	}

	empID, err := s.employeeRepo.CreateEmployee(ctx, &models.Employee{
		UID:          req.UID,
		Phone:        req.Phone,
		NationalCode: req.NationalCode,
		PersonelNo:   req.PersonelNo,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeAlreadyExists) || errors.Is(err, apperrors.ErrUserNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating employee: %w", err)
	}
	return empID, nil
}

// GetEmployeeByID retrieves an employee with its classification and
// assignments
func (s *employeeServiceImpl) GetEmployeeByID(ctx context.Context, empID int64) (*dto.EmployeeResponse, error) {
	if empID <= 0 {
		return nil, fmt.Errorf("%w: invalid employee ID", apperrors.ErrValidationFailed)
	}

	employee, err := s.employeeRepo.GetEmployeeByID(ctx, empID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}

	profile, err := s.contactRepo.GetEmployeeProfile(ctx, empID)
	if err != nil {
		return nil, fmt.Errorf("error loading employee profile: %w", err)
	}

	resp := &dto.EmployeeResponse{
		Employee: *employee,
		FullName: profile.FullName,
	}
	if profile.Faculty != nil {
		resp.FacultyMember = &models.FacultyMember{EmpID: empID, DID: profile.Faculty.DID}
	}
	resp.NonFacultyMember = profile.NonFaculty

	esps, err := s.espRepo.GetESPsByEmployee(ctx, empID)
	if err != nil {
		return nil, fmt.Errorf("error loading assignments: %w", err)
	}
	for _, esp := range esps {
		resp.ESPs = append(resp.ESPs, *esp)
	}

	return resp, nil
}

// GetAllEmployees retrieves employees with optional paging
func (s *employeeServiceImpl) GetAllEmployees(ctx context.Context, limit, offset int, paged bool) ([]*models.Employee, error) {
	employees, err := s.employeeRepo.GetAllEmployees(ctx, limit, offset, paged)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees: %w", err)
	}
	return employees, nil
}

// DeleteEmployee removes an employee by ID
func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, empID int64) error {
	if empID <= 0 {
		return fmt.Errorf("%w: invalid employee ID", apperrors.ErrValidationFailed)
	}

	err := s.employeeRepo.DeleteEmployee(ctx, empID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("error deleting employee: %w", err)
	}
	return nil
}

// SetFacultyMember classifies an employee as faculty staff in a department
func (s *employeeServiceImpl) SetFacultyMember(ctx context.Context, empID, did int64) error {
	if empID <= 0 || did <= 0 {
		return fmt.Errorf("%w: invalid employee or department ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.employeeRepo.GetEmployeeByID(ctx, empID); err != nil {
		return err
	}
	if _, err := s.departmentRepo.GetDepartmentByID(ctx, did); err != nil {
		return err
	}

	err := s.employeeRepo.SetFacultyMember(ctx, empID, did)
	if err != nil {
		if errors.Is(err, apperrors.ErrClassificationExists) || errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return err
		}
		return fmt.Errorf("error setting faculty member: %w", err)
	}
	return nil
}

// SetNonFacultyMember classifies an employee as non-faculty staff
func (s *employeeServiceImpl) SetNonFacultyMember(ctx context.Context, empID int64, workarea *string) error {
	if empID <= 0 {
		return fmt.Errorf("%w: invalid employee ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.employeeRepo.GetEmployeeByID(ctx, empID); err != nil {
		return err
	}

	err := s.employeeRepo.SetNonFacultyMember(ctx, empID, workarea)
	if err != nil {
		if errors.Is(err, apperrors.ErrClassificationExists) {
			return apperrors.ErrClassificationExists
		}
		return fmt.Errorf("error setting non-faculty member: %w", err)
	}
	return nil
}

// ClearClassification removes whichever classification the employee holds
func (s *employeeServiceImpl) ClearClassification(ctx context.Context, empID int64) error {
	if empID <= 0 {
		return fmt.Errorf("%w: invalid employee ID", apperrors.ErrValidationFailed)
	}

	err := s.employeeRepo.ClearClassification(ctx, empID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("error clearing classification: %w", err)
	}
	return nil
}
