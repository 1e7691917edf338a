package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "middleware-test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "unitel.test",
	})
}

func newTestRouter(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no principal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": principal.UID, "role": principal.Role})
	})
	router.GET("/employee-only", m.JWTAuth(), m.RoleRequired(models.RoleEmployee), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router := newTestRouter(NewAuthMiddleware(newTestJWTService()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router := newTestRouter(NewAuthMiddleware(newTestJWTService()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthResolvesPrincipal(t *testing.T) {
	jwtService := newTestJWTService()
	router := newTestRouter(NewAuthMiddleware(jwtService))

	access, _, _, _, err := jwtService.GenerateTokenPair(7, "09120000000", models.RoleUser, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"uid": 7, "role": "user"}`, w.Body.String())
}

func TestRoleRequiredRejectsWrongRole(t *testing.T) {
	jwtService := newTestJWTService()
	router := newTestRouter(NewAuthMiddleware(jwtService))

	access, _, _, _, err := jwtService.GenerateTokenPair(7, "09120000000", models.RoleUser, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/employee-only", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleRequiredAllowsMatchingRole(t *testing.T) {
	jwtService := newTestJWTService()
	router := newTestRouter(NewAuthMiddleware(jwtService))

	empID := int64(42)
	access, _, _, _, err := jwtService.GenerateTokenPair(7, "09120000000", models.RoleEmployee, &empID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/employee-only", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
