package httpkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/platform/apperr"
	"storefront/platform/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	limiter := NewPerMinuteLimiter(1, logger.Discard())
	engine := gin.New()
	engine.GET("/", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	engine.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	engine.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", second.Code)
	}
}

func TestRequireAdminToken(t *testing.T) {
	engine := gin.New()
	engine.POST("/", RequireAdminToken("secret"), func(c *gin.Context) { c.Status(http.StatusCreated) })

	denied := httptest.NewRecorder()
	engine.ServeHTTP(denied, httptest.NewRequest(http.MethodPost, "/", nil))
	if denied.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", denied.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(AdminTokenHeader, "secret")
	allowed := httptest.NewRecorder()
	engine.ServeHTTP(allowed, req)
	if allowed.Code != http.StatusCreated {
		t.Fatalf("expected 201 with token, got %d", allowed.Code)
	}
}

func TestHandleErrorMapsKinds(t *testing.T) {
	engine := gin.New()
	engine.GET("/missing", func(c *gin.Context) { HandleError(c, apperr.NotFound("product not found")) })
	engine.GET("/boom", func(c *gin.Context) { HandleError(c, errors.New("boom")) })

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
