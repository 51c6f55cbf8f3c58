package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintdesk/internal/infrastructure/auth"
	"maintdesk/internal/shared/logger"
)

func setupAuthTest(t *testing.T) (*gin.Engine, *auth.JWTService) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService("test-secret", 15)
	m := NewAuthMiddleware(jwtService, logger.NewLogger())

	engine := gin.New()
	engine.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		userID, _ := c.Get(ContextKeyUserID)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return engine, jwtService
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	t.Run("valid bearer token passes and sets user id", func(t *testing.T) {
		engine, jwtService := setupAuthTest(t)

		token, err := jwtService.Generate(10, "ADMIN")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":10`)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		engine, _ := setupAuthTest(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		engine, jwtService := setupAuthTest(t)

		token, err := jwtService.Generate(10, "ADMIN")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token "+token)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is unauthorized", func(t *testing.T) {
		engine, _ := setupAuthTest(t)

		other := auth.NewJWTService("other-secret", 15)
		token, err := other.Generate(10, "ADMIN")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestJWTService_GenerateVerify(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15)

	token, err := jwtService.Generate(7, "MEMBER")
	require.NoError(t, err)

	claims, err := jwtService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "MEMBER", claims.Role)
}
