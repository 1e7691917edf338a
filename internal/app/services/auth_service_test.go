package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/pkg/apperrors"
	"github.com/milad/unitel/internal/pkg/auth"
)

type fakeOTPStore struct {
	otp     *models.OTP
	getErr  error
	created []*models.OTP
	deleted []int64
}

func (f *fakeOTPStore) GetLatestByPhone(_ context.Context, phone string) (*models.OTP, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.otp == nil {
		return nil, apperrors.ErrOTPNotFound
	}
	return f.otp, nil
}

func (f *fakeOTPStore) Create(_ context.Context, otp *models.OTP) (int64, error) {
	f.created = append(f.created, otp)
	return int64(len(f.created)), nil
}

func (f *fakeOTPStore) DeleteByID(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUserStore struct {
	user *models.User
}

func (f *fakeUserStore) GetUserByPhone(_ context.Context, phone string) (*models.User, error) {
	if f.user == nil || f.user.Phone != phone {
		return nil, apperrors.ErrUserNotFound
	}
	return f.user, nil
}

type fakeEmployeeStore struct {
	employee *models.Employee
}

func (f *fakeEmployeeStore) GetEmployeeByUID(_ context.Context, uid int64) (*models.Employee, error) {
	if f.employee == nil || f.employee.UID != uid {
		return nil, apperrors.ErrEmployeeNotFound
	}
	return f.employee, nil
}

type fakeSMS struct {
	phones   []string
	messages []string
	err      error
}

func (f *fakeSMS) Send(_ context.Context, phone, message string) error {
	if f.err != nil {
		return f.err
	}
	f.phones = append(f.phones, phone)
	f.messages = append(f.messages, message)
	return nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "unitel.test",
	})
}

func newTestAuthService(otps *fakeOTPStore, users *fakeUserStore, employees *fakeEmployeeStore, smsSvc *fakeSMS) AuthService {
	return NewAuthService(otps, users, employees, testJWTService(), smsSvc, 2*time.Minute)
}

func TestSendOTPRequiresPhone(t *testing.T) {
	svc := newTestAuthService(&fakeOTPStore{}, &fakeUserStore{}, &fakeEmployeeStore{}, &fakeSMS{})

	_, err := svc.SendOTP(context.Background(), "   ")
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSendOTPCooldownWhileCodePending(t *testing.T) {
	otps := &fakeOTPStore{otp: &models.OTP{
		ID:        1,
		Code:      "1234",
		Phone:     "09120000000",
		ExpiresAt: time.Now().Add(time.Minute),
	}}
	smsSvc := &fakeSMS{}
	svc := newTestAuthService(otps, &fakeUserStore{}, &fakeEmployeeStore{}, smsSvc)

	_, err := svc.SendOTP(context.Background(), "09120000000")
	require.ErrorIs(t, err, apperrors.ErrOTPCooldown)
	assert.Empty(t, otps.created)
	assert.Empty(t, smsSvc.messages)
}

func TestSendOTPReplacesStaleCode(t *testing.T) {
	otps := &fakeOTPStore{otp: &models.OTP{
		ID:        7,
		Code:      "1234",
		Phone:     "09120000000",
		ExpiresAt: time.Now().Add(-time.Minute),
	}}
	smsSvc := &fakeSMS{}
	svc := newTestAuthService(otps, &fakeUserStore{}, &fakeEmployeeStore{}, smsSvc)

	resp, err := svc.SendOTP(context.Background(), "09120000000")
	require.NoError(t, err)
	assert.Equal(t, 120, resp.ExpiresInSeconds)

	assert.Equal(t, []int64{7}, otps.deleted)
	require.Len(t, otps.created, 1)

	code := otps.created[0].Code
	assert.Len(t, code, otpCodeLength)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "code must be numeric, got %q", code)
	}

	require.Len(t, smsSvc.messages, 1)
	assert.True(t, strings.HasPrefix(smsSvc.messages[0], "کد ورود شما: "))
	assert.True(t, strings.HasSuffix(smsSvc.messages[0], code))
	assert.Equal(t, []string{"09120000000"}, smsSvc.phones)
}

func TestVerifyOTPExpiredCodeIsDiscarded(t *testing.T) {
	otps := &fakeOTPStore{otp: &models.OTP{
		ID:        3,
		Code:      "4321",
		Phone:     "09120000000",
		ExpiresAt: time.Now().Add(-time.Second),
	}}
	svc := newTestAuthService(otps, &fakeUserStore{}, &fakeEmployeeStore{}, &fakeSMS{})

	_, err := svc.VerifyOTP(context.Background(), "09120000000", "4321")
	require.ErrorIs(t, err, apperrors.ErrOTPExpired)
	assert.Equal(t, []int64{3}, otps.deleted)
}

func TestVerifyOTPMismatchKeepsCode(t *testing.T) {
	otps := &fakeOTPStore{otp: &models.OTP{
		ID:        3,
		Code:      "4321",
		Phone:     "09120000000",
		ExpiresAt: time.Now().Add(time.Minute),
	}}
	svc := newTestAuthService(otps, &fakeUserStore{}, &fakeEmployeeStore{}, &fakeSMS{})

	_, err := svc.VerifyOTP(context.Background(), "09120000000", "0000")
	require.ErrorIs(t, err, apperrors.ErrOTPMismatch)
	assert.Empty(t, otps.deleted)
}

func TestVerifyOTPIssuesUserTokens(t *testing.T) {
	otps := &fakeOTPStore{otp: &models.OTP{
		ID:        3,
		Code:      "4321",
		Phone:     "09120000000",
		ExpiresAt: time.Now().Add(time.Minute),
	}}
	users := &fakeUserStore{user: &models.User{UID: 11, Phone: "09120000000", FullName: "Sara"}}
	svc := newTestAuthService(otps, users, &fakeEmployeeStore{}, &fakeSMS{})

	tokens, err := svc.VerifyOTP(context.Background(), "09120000000", "4321")
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, otps.deleted)
	assert.Equal(t, models.RoleUser, tokens.Role)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, 3600, tokens.ExpiresIn)

	claims, err := testJWTService().ValidateAndExtractClaims(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(11), claims.UID)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Nil(t, claims.EmpID)
}

func TestVerifyOTPResolvesEmployeeRole(t *testing.T) {
	otps := &fakeOTPStore{otp: &models.OTP{
		ID:        3,
		Code:      "4321",
		Phone:     "09120000000",
		ExpiresAt: time.Now().Add(time.Minute),
	}}
	users := &fakeUserStore{user: &models.User{UID: 11, Phone: "09120000000"}}
	employees := &fakeEmployeeStore{employee: &models.Employee{EmpID: 42, UID: 11}}
	svc := newTestAuthService(otps, users, employees, &fakeSMS{})

	tokens, err := svc.VerifyOTP(context.Background(), "09120000000", "4321")
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, tokens.Role)

	claims, err := testJWTService().ValidateAndExtractClaims(tokens.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, claims.EmpID)
	assert.Equal(t, int64(42), *claims.EmpID)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(&fakeOTPStore{}, &fakeUserStore{}, &fakeEmployeeStore{}, &fakeSMS{})

	_, err := svc.Login(context.Background(), "09120000000", "secret")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("right-password")
	require.NoError(t, err)

	users := &fakeUserStore{user: &models.User{UID: 11, Phone: "09120000000", Password: hash}}
	svc := newTestAuthService(&fakeOTPStore{}, users, &fakeEmployeeStore{}, &fakeSMS{})

	_, err = svc.Login(context.Background(), "09120000000", "wrong-password")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("right-password")
	require.NoError(t, err)

	users := &fakeUserStore{user: &models.User{UID: 11, Phone: "09120000000", Password: hash}}
	svc := newTestAuthService(&fakeOTPStore{}, users, &fakeEmployeeStore{}, &fakeSMS{})

	tokens, err := svc.Login(context.Background(), "09120000000", "right-password")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, tokens.Role)
	assert.NotEmpty(t, tokens.AccessToken)
}
