//go:build unit

package middleware_test

import (
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"booking-portal/internal/handler/middleware"
	"booking-portal/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	var mw gin.HandlerFunc
	require.NotPanics(t, func() {
		mw = middleware.NewCORSMiddleware(cfg.CORS, slog.Default())
	})

	router := gin.New()
	router.Use(mw)
	router.GET("/resources", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin sees the request id header", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/resources", nil)
		req.Header.Set("Origin", cfg.CORS.AllowOrigins[0])
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, cfg.CORS.AllowOrigins[0], rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")), strings.ToLower(middleware.RequestIDHeader))
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/resources", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
