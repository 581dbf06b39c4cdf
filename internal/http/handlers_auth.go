package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"github.com/taskhive/taskhive-api/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	SignIn(ctx context.Context, input service.SignInInput) (*service.SignInResult, error)
	Authenticate(ctx context.Context, token string) (domainauth.AuthContext, error)
	CurrentUser(ctx context.Context, authCtx domainauth.AuthContext) (*model.User, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc    AuthServiceInterface
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// googleSignInRequest is the body of POST /auth/google.
type googleSignInRequest struct {
	Credential string `json:"credential"`
}

// GoogleSignIn handles the credential sign-in endpoint.
// POST /auth/google {credential} -> {token, user}.
func (h *AuthHandlers) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req googleSignInRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Credential == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_credential",
			Err:     errors.New("credential is required"),
		})
		return
	}

	result, err := h.Svc.SignIn(r.Context(), service.SignInInput{
		Credential: req.Credential,
		IPAddress:  clientIP(r),
		UserAgent:  r.UserAgent(),
	})
	if err != nil {
		switch {
		case errors.Is(err, domainauth.ErrInvalidCredential):
			// The reason a credential was rejected is deliberately not exposed.
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "invalid_credential",
				Err:     errors.New("credential could not be verified"),
			})
		case errors.Is(err, domainauth.ErrAccountDisabled):
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "account_disabled",
				Err:     errors.New("account is disabled"),
			})
		default:
			h.logger().ErrorContext(r.Context(), "sign-in failed", "error", err)
			WriteError(w, ErrorParams{
				Code:    http.StatusInternalServerError,
				ErrCode: "sign_in_failed",
				Err:     errors.New("sign-in failed"),
			})
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"token": result.Token,
		"user":  result.User,
	})
}

// Logout handles the logout endpoint.
// POST /auth/logout -> 200 always. With a denylist the token is revoked
// server-side; without one the client discarding the token is the logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if token := BearerToken(r); token != "" {
		if err := h.Svc.Logout(r.Context(), token); err != nil {
			h.logger().WarnContext(r.Context(), "logout revoke failed", "error", err)
		}
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}

// Me returns the account behind the presented token via a fresh read.
// GET /auth/me -> {user}.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := GetAuthContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	user, err := h.Svc.CurrentUser(r.Context(), authCtx)
	if err != nil {
		if errors.Is(err, domainauth.ErrUnauthenticated) {
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "invalid_token",
				Err:     errors.New("account no longer exists"),
			})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}
