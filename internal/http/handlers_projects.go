package httpx

import (
	"errors"
	"net/http"

	"github.com/taskhive/taskhive-api/internal/data"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"github.com/taskhive/taskhive-api/internal/service"
)

// ProjectHandlers provides HTTP handlers for owner-scoped project operations.
// Every handler resolves the owner from the auth context; a project owned by
// someone else is indistinguishable from a missing one.
type ProjectHandlers struct {
	Svc *service.ProjectService
}

const maxProjectListLimit = 100

// requireOwner pulls the authenticated user ID or writes a 401.
func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	authCtx, ok := GetAuthContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return "", false
	}
	return authCtx.UserID, true
}

// Create handles HTTP requests to create a project.
func (h *ProjectHandlers) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req model.CreateProjectRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	project, err := h.Svc.Create(r.Context(), ownerID, &req)
	if err != nil {
		if isValidationError(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, project)
}

// List handles HTTP requests to list the owner's projects.
// GET /projects?q=&limit=&offset=.
func (h *ProjectHandlers) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	limit, offset := ParseLimitOffset(r, 50, maxProjectListLimit)
	opts := model.ProjectsListOptions{Limit: limit, Offset: offset}
	if q := r.URL.Query().Get("q"); q != "" {
		opts.Q = &q
	}

	projects, err := h.Svc.List(r.Context(), ownerID, opts)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	if projects == nil {
		projects = []*model.Project{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"projects": projects,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetByID handles HTTP requests to get one of the owner's projects.
func (h *ProjectHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")

	project, err := h.Svc.GetByID(r.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, data.ErrProjectNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "project_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, project)
}

// Update handles HTTP requests to update one of the owner's projects.
func (h *ProjectHandlers) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")

	var req model.UpdateProjectRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	project, err := h.Svc.Update(r.Context(), ownerID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrProjectNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "project_not_found", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, project)
}

// Delete handles HTTP requests to delete one of the owner's projects.
// Tasks are removed by cascade.
func (h *ProjectHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")

	deleted, err := h.Svc.Delete(r.Context(), ownerID, id)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "project_not_found",
			Err:     errors.New("project not found"),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
