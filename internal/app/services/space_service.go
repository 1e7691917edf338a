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

// SpaceService defines the interface for space-related operations
type SpaceService interface {
	CreateSpace(ctx context.Context, space *models.Space) (int64, error)
	GetSpaceByID(ctx context.Context, cid int64) (*models.Space, error)
	GetAllSpaces(ctx context.Context, limit, offset int, paged bool) ([]*models.Space, error)
	UpdateSpace(ctx context.Context, space *models.Space) error
	DeleteSpace(ctx context.Context, cid int64) error
}

// spaceServiceImpl implements the SpaceService interface
type spaceServiceImpl struct {
	spaceRepo *repositories.SpaceRepository
}

// NewSpaceService creates a new space service instance
func NewSpaceService(spaceRepo *repositories.SpaceRepository) SpaceService {
	return &spaceServiceImpl{
		spaceRepo: spaceRepo,
	}
}

// CreateSpace creates a new space
func (s *spaceServiceImpl) CreateSpace(ctx context.Context, space *models.Space) (int64, error) {
	if space == nil || strings.TrimSpace(space.SName) == "" {
		return 0, fmt.Errorf("%w: sname cannot be empty", apperrors.ErrValidationFailed)
	}

	cid, err := s.spaceRepo.CreateSpace(ctx, space)
	if err != nil {
		return 0, fmt.Errorf("error creating space: %w", err)
	}
	return cid, nil
}

// GetSpaceByID retrieves a space by ID
func (s *spaceServiceImpl) GetSpaceByID(ctx context.Context, cid int64) (*models.Space, error) {
	if cid <= 0 {
		return nil, fmt.Errorf("%w: invalid space ID", apperrors.ErrValidationFailed)
	}

	space, err := s.spaceRepo.GetSpaceByID(ctx, cid)
	if err != nil {
		if errors.Is(err, apperrors.ErrSpaceNotFound) {
			return nil, apperrors.ErrSpaceNotFound
		}
		return nil, fmt.Errorf("error retrieving space: %w", err)
	}
	return space, nil
}

// GetAllSpaces retrieves spaces with optional paging
func (s *spaceServiceImpl) GetAllSpaces(ctx context.Context, limit, offset int, paged bool) ([]*models.Space, error) {
	spaces, err := s.spaceRepo.GetAllSpaces(ctx, limit, offset, paged)
	if err != nil {
		return nil, fmt.Errorf("error retrieving spaces: %w", err)
	}
	return spaces, nil
}

// UpdateSpace updates an existing space
func (s *spaceServiceImpl) UpdateSpace(ctx context.Context, space *models.Space) error {
	if space == nil || strings.TrimSpace(space.SName) == "" {
		return fmt.Errorf("%w: sname cannot be empty", apperrors.ErrValidationFailed)
	}
	if space.CID <= 0 {
		return fmt.Errorf("%w: invalid space ID", apperrors.ErrValidationFailed)
	}

	err := s.spaceRepo.UpdateSpace(ctx, space)
	if err != nil {
		if errors.Is(err, apperrors.ErrSpaceNotFound) {
			return apperrors.ErrSpaceNotFound
		}
		return fmt.Errorf("error updating space: %w", err)
	}
	return nil
}

// DeleteSpace deletes a space by ID
func (s *spaceServiceImpl) DeleteSpace(ctx context.Context, cid int64) error {
	if cid <= 0 {
		return fmt.Errorf("%w: invalid space ID", apperrors.ErrValidationFailed)
	}

	err := s.spaceRepo.DeleteSpace(ctx, cid)
	if err != nil {
		if errors.Is(err, apperrors.ErrSpaceNotFound) {
			return apperrors.ErrSpaceNotFound
		}
		return fmt.Errorf("error deleting space: %w", err)
	}
	return nil
}
