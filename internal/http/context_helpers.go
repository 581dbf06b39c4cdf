package httpx

import (
	"context"

	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
)

// authCtxKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type authCtxKey struct{}

// SetAuthContext returns a child context carrying the resolved auth context.
func SetAuthContext(ctx context.Context, authCtx domainauth.AuthContext) context.Context {
	return context.WithValue(ctx, authCtxKey{}, authCtx)
}

// GetAuthContext returns the auth context and a boolean indicating presence.
// Handlers behind RequireAuth can rely on presence; everywhere else check ok.
func GetAuthContext(ctx context.Context) (domainauth.AuthContext, bool) {
	authCtx, ok := ctx.Value(authCtxKey{}).(domainauth.AuthContext)
	return authCtx, ok
}
