package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/repositories"
	"github.com/milad/unitel/internal/pkg/apperrors"
	"github.com/milad/unitel/internal/pkg/auth"
)

// UserService defines the interface for user account operations
type UserService interface {
	CreateUser(ctx context.Context, phone, fullName, password string) (int64, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	GetAllUsers(ctx context.Context, limit, offset int, paged bool) ([]*models.User, error)
	UpdateFullName(ctx context.Context, phone, fullName string) error
	ChangePassword(ctx context.Context, phone, currentPassword, newPassword string) error
	DeleteUser(ctx context.Context, phone string) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// CreateUser registers a new account with a hashed password
func (s *userServiceImpl) CreateUser(ctx context.Context, phone, fullName, password string) (int64, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return 0, fmt.Errorf("%w: phone cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(fullName) == "" {
		return 0, fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}
	if len(password) < 6 {
		return 0, fmt.Errorf("%w: password must be at least 6 characters", apperrors.ErrValidationFailed)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	uid, err := s.userRepo.CreateUser(ctx, &models.User{
		Phone:    phone,
		FullName: fullName,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return 0, apperrors.ErrUserAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return uid, nil
}

// GetUserByPhone retrieves a user by phone number
func (s *userServiceImpl) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: phone cannot be empty", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetAllUsers retrieves users with optional paging
func (s *userServiceImpl) GetAllUsers(ctx context.Context, limit, offset int, paged bool) ([]*models.User, error) {
	users, err := s.userRepo.GetAllUsers(ctx, limit, offset, paged)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// UpdateFullName updates the display name of an account
func (s *userServiceImpl) UpdateFullName(ctx context.Context, phone, fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}

	err := s.userRepo.UpdateFullName(ctx, phone, fullName)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error updating name: %w", err)
	}
	return nil
}

// ChangePassword verifies the current password before storing the new hash
func (s *userServiceImpl) ChangePassword(ctx context.Context, phone, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: new password must be at least 6 characters", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, currentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, phone, hash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	return nil
}

// DeleteUser removes an account by phone number
func (s *userServiceImpl) DeleteUser(ctx context.Context, phone string) error {
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("%w: phone cannot be empty", apperrors.ErrValidationFailed)
	}

	err := s.userRepo.DeleteUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
