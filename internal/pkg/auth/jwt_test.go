package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "unit-test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "unitel.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService(time.Hour)

	empID := int64(42)
	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(7, "09120000000", "employee", &empID)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, 86400, refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(access)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UID)
	assert.Equal(t, "09120000000", claims.Phone)
	assert.Equal(t, "employee", claims.Role)
	require.NotNil(t, claims.EmpID)
	assert.Equal(t, empID, *claims.EmpID)
	assert.Equal(t, "unitel.test", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	access, _, _, _, err := testService(time.Hour).GenerateTokenPair(7, "09120000000", "user", nil)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "a-different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "unitel.test",
	})
	_, err = other.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := testService(-time.Minute)

	access, _, _, _, err := svc.GenerateTokenPair(7, "09120000000", "user", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateAndExtractClaimsRejectsEmptyToken(t *testing.T) {
	_, err := testService(time.Hour).ValidateAndExtractClaims("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "other"))
}
