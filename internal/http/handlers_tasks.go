package httpx

import (
	"errors"
	"net/http"

	"github.com/taskhive/taskhive-api/internal/data"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"github.com/taskhive/taskhive-api/internal/service"
)

// TaskHandlers provides HTTP handlers for task operations. Ownership is
// established through the owning project for every route.
type TaskHandlers struct {
	Svc *service.TaskService
}

// writeTaskErr maps task/project errors onto HTTP responses shared by the
// task handlers.
func writeTaskErr(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, data.ErrTaskNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "task_not_found", Err: err})
	case errors.Is(err, data.ErrProjectNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "project_not_found", Err: err})
	case errors.Is(err, data.ErrLabelNotFound):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "unknown_label", Err: err})
	case isValidationError(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
	default:
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: fallback, Err: err})
	}
}

// Create handles HTTP requests to create a task in a project.
// POST /projects/{id}/tasks.
func (h *TaskHandlers) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("id")

	var req model.CreateTaskRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	task, err := h.Svc.Create(r.Context(), ownerID, projectID, &req)
	if err != nil {
		writeTaskErr(w, err, "create_failed")
		return
	}

	WriteJSON(w, http.StatusCreated, task)
}

// ListByProject handles HTTP requests to list a project's tasks in board order.
// GET /projects/{id}/tasks.
func (h *TaskHandlers) ListByProject(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("id")

	tasks, err := h.Svc.ListByProject(r.Context(), ownerID, projectID)
	if err != nil {
		writeTaskErr(w, err, "list_failed")
		return
	}

	if tasks == nil {
		tasks = []*model.Task{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

// GetByID handles HTTP requests to get one of the owner's tasks.
// GET /tasks/{id}.
func (h *TaskHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")

	task, err := h.Svc.GetByID(r.Context(), ownerID, id)
	if err != nil {
		writeTaskErr(w, err, "get_failed")
		return
	}

	WriteJSON(w, http.StatusOK, task)
}

// Update handles HTTP requests to update one of the owner's tasks.
// PUT /tasks/{id}.
func (h *TaskHandlers) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")

	var req model.UpdateTaskRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	task, err := h.Svc.Update(r.Context(), ownerID, id, req)
	if err != nil {
		writeTaskErr(w, err, "update_failed")
		return
	}

	WriteJSON(w, http.StatusOK, task)
}

// Move places one of the owner's tasks in a column at a position.
// PUT /tasks/{id}/move.
func (h *TaskHandlers) Move(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")

	var req model.MoveTaskRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	task, err := h.Svc.Move(r.Context(), ownerID, id, req)
	if err != nil {
		writeTaskErr(w, err, "move_failed")
		return
	}

	WriteJSON(w, http.StatusOK, task)
}

// Delete handles HTTP requests to delete one of the owner's tasks.
// DELETE /tasks/{id}.
func (h *TaskHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			ErrCode: "task_not_found",
			Err:     errors.New("task not found"),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
