package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// GuardService validates a bearer token into an auth context.
type GuardService interface {
	Authenticate(ctx context.Context, token string) (domainauth.AuthContext, error)
}

// RequireAuth returns a middleware that requires a valid bearer session token.
// On success the resolved auth context is attached to the request context;
// otherwise a 401 is written and the wrapped handler never runs.
func RequireAuth(authSvc GuardService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authCtx, ok := authenticateRequest(w, r, authSvc)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(SetAuthContext(r.Context(), authCtx)))
		})
	}
}

// RequireRole returns a middleware that requires authentication plus a role.
// A missing or invalid token yields 401; a valid token with an insufficient
// role yields 403.
func RequireRole(authSvc GuardService, requiredRole domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authCtx, ok := authenticateRequest(w, r, authSvc)
			if !ok {
				return
			}

			if !hasRequiredRole(authCtx.Role, requiredRole) {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "insufficient_permissions",
					Err:     errors.New("insufficient permissions"),
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(SetAuthContext(r.Context(), authCtx)))
		})
	}
}

// authenticateRequest resolves the bearer token on the request. On failure it
// writes the 401 response and returns ok=false.
func authenticateRequest(
	w http.ResponseWriter,
	r *http.Request,
	authSvc GuardService,
) (domainauth.AuthContext, bool) {
	token := BearerToken(r)
	if token == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return domainauth.AuthContext{}, false
	}

	authCtx, err := authSvc.Authenticate(r.Context(), token)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "invalid_token",
			Err:     errors.New("invalid or expired token"),
		})
		return domainauth.AuthContext{}, false
	}

	return authCtx, true
}

// BearerToken extracts the token from the Authorization header. Returns ""
// when the header is absent or not a Bearer scheme.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// hasRequiredRole checks if the user's role meets the required role.
// Role hierarchy: User < Admin.
func hasRequiredRole(userRole, requiredRole domainauth.Role) bool {
	roleHierarchy := map[domainauth.Role]int{
		domainauth.RoleUser:  0,
		domainauth.RoleAdmin: 1,
	}

	userLevel, userExists := roleHierarchy[userRole]
	requiredLevel, requiredExists := roleHierarchy[requiredRole]

	if !userExists || !requiredExists {
		return false
	}

	return userLevel >= requiredLevel
}
