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

// ContactInfoService defines the interface for contact line operations
type ContactInfoService interface {
	CreateContactInfo(ctx context.Context, info *models.ContactInfo) error
	GetContactInfoByNumber(ctx context.Context, phoneNumber string) (*models.ContactInfo, error)
	GetContactInfosByCID(ctx context.Context, cid int64) ([]*models.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, info *models.ContactInfo) error
	DeleteContactInfo(ctx context.Context, phoneNumber string) error
}

// contactInfoServiceImpl implements the ContactInfoService interface
type contactInfoServiceImpl struct {
	contactInfoRepo *repositories.ContactInfoRepository
}

// NewContactInfoService creates a new contact info service instance
func NewContactInfoService(contactInfoRepo *repositories.ContactInfoRepository) ContactInfoService {
	return &contactInfoServiceImpl{
		contactInfoRepo: contactInfoRepo,
	}
}

// CreateContactInfo attaches a phone line to a contactable
func (s *contactInfoServiceImpl) CreateContactInfo(ctx context.Context, info *models.ContactInfo) error {
	if info == nil || strings.TrimSpace(info.PhoneNumber) == "" {
		return fmt.Errorf("%w: phone number cannot be empty", apperrors.ErrValidationFailed)
	}
	if info.CID <= 0 {
		return fmt.Errorf("%w: invalid contactable ID", apperrors.ErrValidationFailed)
	}

	err := s.contactInfoRepo.CreateContactInfo(ctx, info)
	if err != nil {
		if errors.Is(err, apperrors.ErrContactInfoExists) || errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error creating contact info: %w", err)
	}
	return nil
}

// GetContactInfoByNumber retrieves a contact line by phone number
func (s *contactInfoServiceImpl) GetContactInfoByNumber(ctx context.Context, phoneNumber string) (*models.ContactInfo, error) {
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, fmt.Errorf("%w: phone number cannot be empty", apperrors.ErrValidationFailed)
	}

	info, err := s.contactInfoRepo.GetContactInfoByNumber(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrContactInfoNotFound) {
			return nil, apperrors.ErrContactInfoNotFound
		}
		return nil, fmt.Errorf("error retrieving contact info: %w", err)
	}
	return info, nil
}

// GetContactInfosByCID retrieves all contact lines of a contactable
func (s *contactInfoServiceImpl) GetContactInfosByCID(ctx context.Context, cid int64) ([]*models.ContactInfo, error) {
	if cid <= 0 {
		return nil, fmt.Errorf("%w: invalid contactable ID", apperrors.ErrValidationFailed)
	}

	infos, err := s.contactInfoRepo.GetContactInfosByCID(ctx, cid)
	if err != nil {
		return nil, fmt.Errorf("error retrieving contact infos: %w", err)
	}
	return infos, nil
}

// UpdateContactInfo updates the routing fields of a contact line
func (s *contactInfoServiceImpl) UpdateContactInfo(ctx context.Context, info *models.ContactInfo) error {
	if info == nil || strings.TrimSpace(info.PhoneNumber) == "" {
		return fmt.Errorf("%w: phone number cannot be empty", apperrors.ErrValidationFailed)
	}

	err := s.contactInfoRepo.UpdateContactInfo(ctx, info)
	if err != nil {
		if errors.Is(err, apperrors.ErrContactInfoNotFound) {
			return apperrors.ErrContactInfoNotFound
		}
		return fmt.Errorf("error updating contact info: %w", err)
	}
	return nil
}

// DeleteContactInfo deletes a contact line by phone number
func (s *contactInfoServiceImpl) DeleteContactInfo(ctx context.Context, phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return fmt.Errorf("%w: phone number cannot be empty", apperrors.ErrValidationFailed)
	}

	err := s.contactInfoRepo.DeleteContactInfo(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrContactInfoNotFound) {
			return apperrors.ErrContactInfoNotFound
		}
		return fmt.Errorf("error deleting contact info: %w", err)
	}
	return nil
}
