package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/megane-nerdo/skillhubnext/internal/storage"
	"github.com/megane-nerdo/skillhubnext/internal/validator"
)

func setupUploadRouter(t *testing.T, basePath string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocalStorage(storage.Config{BasePath: basePath, BaseURL: "/api/v1/files"})
	assert.NoError(t, err)

	r := gin.New()
	h := NewUploadHandler(NewBaseHandler(validator.New()), store)
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestServe_RejectsPathsOutsideUploadRoot(t *testing.T) {
	setHandlerTestConfig(t)

	root := t.TempDir()
	base := filepath.Join(root, "uploads")
	secret := filepath.Join(root, "secret.txt")
	assert.NoError(t, os.WriteFile(secret, []byte("top secret"), 0o600))

	r := setupUploadRouter(t, base)

	for _, target := range []string{
		"/api/v1/files/../secret.txt",
		"/api/v1/files/a/../../secret.txt",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", target, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.NotContains(t, w.Body.String(), "top secret", target)
	}
}

func TestServe_UnknownFile404(t *testing.T) {
	setHandlerTestConfig(t)
	r := setupUploadRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/files/user-1/missing.pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
