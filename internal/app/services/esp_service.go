package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/repositories"
	"github.com/milad/unitel/internal/pkg/apperrors"
)

// ESPService defines the interface for assignment operations
type ESPService interface {
	CreateESP(ctx context.Context, esp *models.ESP) error
	GetESPsByEmployee(ctx context.Context, empID int64) ([]*models.ESP, error)
	DeleteESP(ctx context.Context, esp *models.ESP) error
}

// espServiceImpl implements the ESPService interface
type espServiceImpl struct {
	espRepo      *repositories.ESPRepository
	employeeRepo *repositories.EmployeeRepository
	spaceRepo    *repositories.SpaceRepository
	postRepo     *repositories.PostRepository
}

// NewESPService creates a new assignment service instance
func NewESPService(
	espRepo *repositories.ESPRepository,
	employeeRepo *repositories.EmployeeRepository,
	spaceRepo *repositories.SpaceRepository,
	postRepo *repositories.PostRepository,
) ESPService {
	return &espServiceImpl{
		espRepo:      espRepo,
		employeeRepo: employeeRepo,
		spaceRepo:    spaceRepo,
		postRepo:     postRepo,
	}
}

func (s *espServiceImpl) validateESP(esp *models.ESP) error {
	if esp == nil {
		return fmt.Errorf("%w: assignment is nil", apperrors.ErrValidationFailed)
	}
	if esp.EmpID <= 0 || esp.SID <= 0 || esp.PID <= 0 {
		return fmt.Errorf("%w: emp_id, sid and pid are required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateESP assigns an employee to a (space, post) pair after verifying all
// three ends of the relation exist
func (s *espServiceImpl) CreateESP(ctx context.Context, esp *models.ESP) error {
	if err := s.validateESP(esp); err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetEmployeeByID(ctx, esp.EmpID); err != nil {
		return err
	}
	if _, err := s.spaceRepo.GetSpaceByID(ctx, esp.SID); err != nil {
		return err
	}
	if _, err := s.postRepo.GetPostByID(ctx, esp.PID); err != nil {
		return err
	}

	err := s.espRepo.CreateESP(ctx, esp)
	if err != nil {
		if errors.Is(err, apperrors.ErrESPAlreadyExists) {
			return apperrors.ErrESPAlreadyExists
		}
		return fmt.Errorf("error creating assignment: %w", err)
	}
	return nil
}

// GetESPsByEmployee retrieves an employee's assignments
func (s *espServiceImpl) GetESPsByEmployee(ctx context.Context, empID int64) ([]*models.ESP, error) {
	if empID <= 0 {
		return nil, fmt.Errorf("%w: invalid employee ID", apperrors.ErrValidationFailed)
	}

	esps, err := s.espRepo.GetESPsByEmployee(ctx, empID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving assignments: %w", err)
	}
	return esps, nil
}

// DeleteESP removes an assignment by its composite key
func (s *espServiceImpl) DeleteESP(ctx context.Context, esp *models.ESP) error {
	if err := s.validateESP(esp); err != nil {
		return err
	}

	err := s.espRepo.DeleteESP(ctx, esp)
	if err != nil {
		if errors.Is(err, apperrors.ErrESPNotFound) {
			return apperrors.ErrESPNotFound
		}
		return fmt.Errorf("error deleting assignment: %w", err)
	}
	return nil
}
