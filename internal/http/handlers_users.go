package httpx

import (
	"errors"
	"net/http"

	"github.com/taskhive/taskhive-api/internal/data"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"github.com/taskhive/taskhive-api/internal/service"
)

// UserHandlers provides HTTP handlers for the self-service user surface.
type UserHandlers struct {
	Svc *service.UserService
}

// Profile handles requests for the authenticated user's profile.
// GET /users/profile.
func (h *UserHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := GetAuthContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	user, err := h.Svc.Profile(r.Context(), authCtx.UserID)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "user_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// UpdateProfile handles self-service profile updates. Only name and picture
// are settable; email, role, and active flag never come from the client.
// PUT /users/profile.
func (h *UserHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := GetAuthContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	var req model.UpdateProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.UpdateProfile(r.Context(), authCtx.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrUserNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "user_not_found", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// LoginHistory returns a page of the authenticated user's sign-in log.
// GET /users/login-history?page&limit.
func (h *UserHandlers) LoginHistory(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := GetAuthContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	page, limit := ParsePageLimit(r)
	result, err := h.Svc.LoginHistory(r.Context(), authCtx.UserID, page, limit)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"history": result.Entries,
		"pagination": map[string]any{
			"page":  result.Page,
			"limit": result.Limit,
			"total": result.Total,
			"pages": result.Pages,
		},
	})
}
