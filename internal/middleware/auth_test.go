package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/renchinlab/cookware-api/internal/config"
)

const testSecret = "gpts-actions-shared-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAuthRouter() *gin.Engine {
	cfg := &config.Config{
		EnvVars: config.EnvVars{
			ActionsBearerToken: testSecret,
		},
	}

	r := gin.New()
	r.Use(VerifyBearerToken(cfg))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestVerifyBearerToken_ValidToken(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+testSecret)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d. body: %s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestVerifyBearerToken_MissingHeader(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestVerifyBearerToken_WrongToken(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer wrongtoken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestVerifyBearerToken_MissingBearerPrefix(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", testSecret)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestVerifyBearerToken_DoesNotLeakSecret(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer wrongtoken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if body := w.Body.String(); strings.Contains(body, testSecret) {
		t.Errorf("response body leaks the configured secret: %s", body)
	}
}
