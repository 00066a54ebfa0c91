//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-portal/internal/domain/user"
	"booking-portal/internal/pkg/config"
	"booking-portal/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SessionCookies returns the sealed cookies a browser would hold after
// signing in as u.
func SessionCookies(t *testing.T, cfg config.Config, u user.User) []*http.Cookie {
	t.Helper()
	return SessionCookiesForToken(t, cfg, IssueToken(t, u), u)
}

func SessionCookiesForToken(t *testing.T, cfg config.Config, token string, u user.User) []*http.Cookie {
	t.Helper()
	info, err := json.Marshal(u)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, cookie.SetSessionCookies(c, cfg.Cookie, cookie.NewCodec(cfg.Session.Secret), token, string(info), time.Hour))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	return cookies
}
