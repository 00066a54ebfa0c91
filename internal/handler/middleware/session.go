package middleware

import (
	"booking-portal/internal/session"

	"github.com/gin-gonic/gin"
)

// LoadSession derives the session once per request and attaches it so every
// later handler reads the same value.
func LoadSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Attach(c, store.Load(c))
		c.Next()
	}
}
