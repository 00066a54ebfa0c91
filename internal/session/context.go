package session

import (
	"context"

	"github.com/gin-gonic/gin"
)

const ginKey = "session"

type ctxKey struct{}

func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) Session {
	s, _ := ctx.Value(ctxKey{}).(Session)
	return s
}

// Attach makes s the session every later handler of this request sees.
func Attach(c *gin.Context, s Session) {
	c.Set(ginKey, s)
	c.Request = c.Request.WithContext(NewContext(c.Request.Context(), s))
}

func From(c *gin.Context) Session {
	if v, exists := c.Get(ginKey); exists {
		if s, ok := v.(Session); ok {
			return s
		}
	}
	return FromContext(c.Request.Context())
}
