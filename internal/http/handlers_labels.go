package httpx

import (
	"errors"
	"net/http"

	"github.com/taskhive/taskhive-api/internal/data"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"github.com/taskhive/taskhive-api/internal/service"
)

// LabelHandlers provides HTTP handlers for the shared label catalog.
// Reads are public; writes sit behind the admin role gate in routing.
type LabelHandlers struct {
	Svc *service.LabelService
}

const maxLabelListLimit = 200

// Create handles HTTP requests to create a new label.
func (h *LabelHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateLabelRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	label, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrLabelNameExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "name_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, label)
}

// List handles HTTP requests to list labels with pagination.
func (h *LabelHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxLabelListLimit)

	labels, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	if labels == nil {
		labels = []*model.Label{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"labels": labels,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles HTTP requests to get a label by ID.
func (h *LabelHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("label id is required")},
		)
		return
	}

	label, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrLabelNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "label_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, label)
}

// Update handles HTTP requests to update a label.
func (h *LabelHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("label id is required")},
		)
		return
	}

	var req model.UpdateLabelRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	label, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrLabelNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "label_not_found", Err: err})
		case errors.Is(err, data.ErrLabelNameExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "name_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, label)
}

// Delete handles HTTP requests to delete a label.
func (h *LabelHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("label id is required")},
		)
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "label_not_found",
			Err:     errors.New("label not found"),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
