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

// FavoriteService defines the interface for favorite category and pin
// operations. Categories are owned by the caller's phone number; all
// mutations check ownership.
type FavoriteService interface {
	CreateCategory(ctx context.Context, phone, title string) (*models.FavoriteCategory, error)
	GetCategories(ctx context.Context, phone string) ([]*models.FavoriteCategory, error)
	DeleteCategory(ctx context.Context, phone string, favcatID int64) error
	AddFavorite(ctx context.Context, phone string, favcatID, cid int64) error
	RemoveFavorite(ctx context.Context, phone string, favcatID, cid int64) error
	GetFavorites(ctx context.Context, phone string, favcatID int64) ([]int64, error)
}

// favoriteServiceImpl implements the FavoriteService interface
type favoriteServiceImpl struct {
	favoriteRepo *repositories.FavoriteRepository
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(favoriteRepo *repositories.FavoriteRepository) FavoriteService {
	return &favoriteServiceImpl{
		favoriteRepo: favoriteRepo,
	}
}

// ownedCategory loads a category and verifies the caller owns it.
func (s *favoriteServiceImpl) ownedCategory(ctx context.Context, phone string, favcatID int64) (*models.FavoriteCategory, error) {
	category, err := s.favoriteRepo.GetCategoryByID(ctx, favcatID)
	if err != nil {
		return nil, err
	}
	if category.Phone != phone {
		return nil, apperrors.ErrPermissionDenied
	}
	return category, nil
}

// CreateCategory creates a favorite bucket owned by the caller
func (s *favoriteServiceImpl) CreateCategory(ctx context.Context, phone, title string) (*models.FavoriteCategory, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	category := &models.FavoriteCategory{Title: title, Phone: phone}
	favcatID, err := s.favoriteRepo.CreateCategory(ctx, category)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error creating favorite category: %w", err)
	}
	category.FavcatID = favcatID
	return category, nil
}

// GetCategories retrieves the caller's favorite categories
func (s *favoriteServiceImpl) GetCategories(ctx context.Context, phone string) ([]*models.FavoriteCategory, error) {
	categories, err := s.favoriteRepo.GetCategoriesByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("error retrieving favorite categories: %w", err)
	}
	return categories, nil
}

// DeleteCategory deletes one of the caller's categories
func (s *favoriteServiceImpl) DeleteCategory(ctx context.Context, phone string, favcatID int64) error {
	if favcatID <= 0 {
		return fmt.Errorf("%w: invalid category ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.ownedCategory(ctx, phone, favcatID); err != nil {
		return err
	}

	err := s.favoriteRepo.DeleteCategory(ctx, favcatID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("error deleting favorite category: %w", err)
	}
	return nil
}

// AddFavorite pins a contactable into one of the caller's categories
func (s *favoriteServiceImpl) AddFavorite(ctx context.Context, phone string, favcatID, cid int64) error {
	if favcatID <= 0 || cid <= 0 {
		return fmt.Errorf("%w: invalid category or contactable ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.ownedCategory(ctx, phone, favcatID); err != nil {
		return err
	}

	err := s.favoriteRepo.AddFavorite(ctx, cid, favcatID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFavoriteExists) || errors.Is(err, apperrors.ErrCategoryNotFound) {
			return err
		}
		return fmt.Errorf("error adding favorite: %w", err)
	}
	return nil
}

// RemoveFavorite unpins a contactable from one of the caller's categories
func (s *favoriteServiceImpl) RemoveFavorite(ctx context.Context, phone string, favcatID, cid int64) error {
	if favcatID <= 0 || cid <= 0 {
		return fmt.Errorf("%w: invalid category or contactable ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.ownedCategory(ctx, phone, favcatID); err != nil {
		return err
	}

	err := s.favoriteRepo.RemoveFavorite(ctx, cid, favcatID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFavoriteNotFound) {
			return apperrors.ErrFavoriteNotFound
		}
		return fmt.Errorf("error removing favorite: %w", err)
	}
	return nil
}

// GetFavorites retrieves the contactable ids pinned in one of the caller's
// categories
func (s *favoriteServiceImpl) GetFavorites(ctx context.Context, phone string, favcatID int64) ([]int64, error) {
	if favcatID <= 0 {
		return nil, fmt.Errorf("%w: invalid category ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.ownedCategory(ctx, phone, favcatID); err != nil {
		return nil, err
	}

	cids, err := s.favoriteRepo.GetFavoritesByCategory(ctx, favcatID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving favorites: %w", err)
	}
	return cids, nil
}
