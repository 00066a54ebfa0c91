package backend

import "context"

type tokenKey struct{}

// WithToken attaches the bearer token the wrapper sends on every call made
// with the returned context.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
