package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/pkg/apperrors"
	"github.com/milad/unitel/internal/pkg/auth"
	"github.com/milad/unitel/internal/pkg/logger"
	"github.com/milad/unitel/internal/pkg/sms"
)

const otpCodeLength = 4

// OTPStore abstracts the one-time code persistence used by AuthService.
type OTPStore interface {
	GetLatestByPhone(ctx context.Context, phone string) (*models.OTP, error)
	Create(ctx context.Context, otp *models.OTP) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

// UserStore abstracts the user lookups used by AuthService.
type UserStore interface {
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
}

// EmployeeStore abstracts the employee lookup used for role resolution.
type EmployeeStore interface {
	GetEmployeeByUID(ctx context.Context, uid int64) (*models.Employee, error)
}

// AuthService defines authentication operations
type AuthService interface {
	SendOTP(ctx context.Context, phone string) (*dto.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, phone, code string) (*dto.TokenResponse, error)
	Login(ctx context.Context, phone, password string) (*dto.TokenResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	otpStore      OTPStore
	userStore     UserStore
	employeeStore EmployeeStore
	jwtService    *auth.JWTService
	smsService    sms.Service
	otpLifetime   time.Duration
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	otpStore OTPStore,
	userStore UserStore,
	employeeStore EmployeeStore,
	jwtService *auth.JWTService,
	smsService sms.Service,
	otpLifetime time.Duration,
) AuthService {
	return &authServiceImpl{
		otpStore:      otpStore,
		userStore:     userStore,
		employeeStore: employeeStore,
		jwtService:    jwtService,
		smsService:    smsService,
		otpLifetime:   otpLifetime,
	}
}

// SendOTP generates a fresh code for the phone number and dispatches it by
// SMS. While an unexpired code exists for the number, resending is refused.
func (s *authServiceImpl) SendOTP(ctx context.Context, phone string) (*dto.SendOTPResponse, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone cannot be empty", apperrors.ErrValidationFailed)
	}

	existing, err := s.otpStore.GetLatestByPhone(ctx, phone)
	if err != nil && !errors.Is(err, apperrors.ErrOTPNotFound) {
		return nil, fmt.Errorf("error checking pending code: %w", err)
	}
	if existing != nil {
		if time.Now().Before(existing.ExpiresAt) {
			return nil, apperrors.ErrOTPCooldown
		}
		if err := s.otpStore.DeleteByID(ctx, existing.ID); err != nil && !errors.Is(err, apperrors.ErrOTPNotFound) {
			return nil, fmt.Errorf("error discarding stale code: %w", err)
		}
	}

	code, err := generateOTPCode()
	if err != nil {
		return nil, fmt.Errorf("error generating code: %w", err)
	}

	now := time.Now()
	otp := &models.OTP{
		Code:      code,
		Phone:     phone,
		ExpiresAt: now.Add(s.otpLifetime),
		CreatedAt: now,
	}
	if _, err := s.otpStore.Create(ctx, otp); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("کد ورود شما: %s", code)
	if err := s.smsService.Send(ctx, phone, message); err != nil {
		logger.Error().Err(err).Str("phone", phone).Msg("Failed to deliver verification code")
		return nil, fmt.Errorf("error sending verification code: %w", err)
	}

	return &dto.SendOTPResponse{
		Message:          "verification code sent",
		ExpiresInSeconds: int(s.otpLifetime.Seconds()),
	}, nil
}

// VerifyOTP checks the submitted code and, on success, consumes it and
// issues a token pair for the account behind the phone number.
func (s *authServiceImpl) VerifyOTP(ctx context.Context, phone, code string) (*dto.TokenResponse, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || code == "" {
		return nil, fmt.Errorf("%w: phone and code are required", apperrors.ErrValidationFailed)
	}

	otp, err := s.otpStore.GetLatestByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	if time.Now().After(otp.ExpiresAt) {
		if delErr := s.otpStore.DeleteByID(ctx, otp.ID); delErr != nil && !errors.Is(delErr, apperrors.ErrOTPNotFound) {
			logger.Warn().Err(delErr).Str("phone", phone).Msg("Failed to discard expired code")
		}
		return nil, apperrors.ErrOTPExpired
	}

	if otp.Code != code {
		return nil, apperrors.ErrOTPMismatch
	}

	if err := s.otpStore.DeleteByID(ctx, otp.ID); err != nil && !errors.Is(err, apperrors.ErrOTPNotFound) {
		return nil, fmt.Errorf("error consuming code: %w", err)
	}

	user, err := s.userStore.GetUserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Login authenticates with phone and password and issues a token pair.
func (s *authServiceImpl) Login(ctx context.Context, phone, password string) (*dto.TokenResponse, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return nil, fmt.Errorf("%w: phone and password are required", apperrors.ErrValidationFailed)
	}

	user, err := s.userStore.GetUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// issueTokens resolves the principal's role from the employee table and
// generates the token pair. Users backed by an employee row authenticate as
// employees; everyone else is a plain user.
func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	role := models.RoleUser
	var empID *int64

	employee, err := s.employeeStore.GetEmployeeByUID(ctx, user.UID)
	if err != nil && !errors.Is(err, apperrors.ErrEmployeeNotFound) {
		return nil, fmt.Errorf("error resolving role: %w", err)
	}
	if employee != nil {
		role = models.RoleEmployee
		empID = &employee.EmpID
	}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user.UID, user.Phone, role, empID)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		Role:             role,
	}, nil
}

// generateOTPCode produces a zero-padded numeric code.
func generateOTPCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpCodeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", otpCodeLength, n), nil
}
