package middleware

import (
	"net/http"

	"booking-portal/internal/session"
	"booking-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Allow reports whether a guarded view may render. Only the presence of a
// token is checked; roles are a view concern.
func Allow(s session.Session) bool {
	return s.Token != ""
}

// RequireSession redirects to the login view when Allow is false. Must run
// after LoadSession.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Allow(session.From(c)) {
			c.Redirect(http.StatusSeeOther, usecase.PathLogin)
			c.Abort()
			return
		}
		c.Next()
	}
}
