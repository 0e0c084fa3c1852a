package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/megane-nerdo/skillhubnext/internal/auth"
	"github.com/megane-nerdo/skillhubnext/internal/config"
	"github.com/megane-nerdo/skillhubnext/internal/models"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func setupRouter(roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{AuthMiddleware()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no caller"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": caller.ID, "role": string(caller.Role)})
	})

	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	setTestConfig(t)
	r := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	setTestConfig(t)
	r := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	setTestConfig(t)
	r := setupRouter()

	token, err := auth.GenerateToken("user-1", string(models.UserRoleEmployer))
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"user-1"`)
	assert.Contains(t, w.Body.String(), `"role":"EMPLOYER"`)
}

func TestRequireRoles_WrongRoleGets401(t *testing.T) {
	setTestConfig(t)
	r := setupRouter(models.UserRoleAdmin)

	token, err := auth.GenerateToken("user-1", string(models.UserRoleJobSeeker))
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestRequireRoles_MatchingRolePasses(t *testing.T) {
	setTestConfig(t)
	r := setupRouter(models.UserRoleEmployer, models.UserRoleAdmin)

	token, err := auth.GenerateToken("user-1", string(models.UserRoleEmployer))
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
