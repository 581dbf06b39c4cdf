package service

import (
	"context"
	"fmt"

	"github.com/taskhive/taskhive-api/internal/core"
	"github.com/taskhive/taskhive-api/internal/domain/model"
)

// TaskServiceOptions groups dependencies for TaskService.
type TaskServiceOptions struct {
	Tasks    core.TaskRepository
	Projects core.ProjectRepository
}

// TaskService serves task CRUD and board moves. Ownership is established
// through the owning project before any task write.
type TaskService struct {
	tasks    core.TaskRepository
	projects core.ProjectRepository
}

// NewTaskService constructs a new TaskService.
func NewTaskService(opts TaskServiceOptions) *TaskService {
	if opts.Tasks == nil {
		panic("task service requires a task repository")
	}
	if opts.Projects == nil {
		panic("task service requires a project repository")
	}
	return &TaskService{tasks: opts.Tasks, projects: opts.Projects}
}

// Create creates a task inside one of the owner's projects.
func (s *TaskService) Create(
	ctx context.Context,
	ownerID, projectID string,
	req *model.CreateTaskRequest,
) (*model.Task, error) {
	if _, err := s.projects.GetByID(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	return s.tasks.Create(ctx, projectID, req)
}

// GetByID retrieves one of the owner's tasks.
func (s *TaskService) GetByID(ctx context.Context, ownerID, id string) (*model.Task, error) {
	return s.tasks.GetByID(ctx, ownerID, id)
}

// ListByProject returns a project's tasks in board order.
func (s *TaskService) ListByProject(
	ctx context.Context,
	ownerID, projectID string,
) ([]*model.Task, error) {
	if _, err := s.projects.GetByID(ctx, ownerID, projectID); err != nil {
		return nil, fmt.Errorf("resolve project: %w", err)
	}
	return s.tasks.ListByProject(ctx, projectID)
}

// Update updates one of the owner's tasks.
func (s *TaskService) Update(
	ctx context.Context,
	ownerID, id string,
	req model.UpdateTaskRequest,
) (*model.Task, error) {
	return s.tasks.Update(ctx, ownerID, id, req)
}

// Move places one of the owner's tasks in a column at a position.
func (s *TaskService) Move(
	ctx context.Context,
	ownerID, id string,
	req model.MoveTaskRequest,
) (*model.Task, error) {
	return s.tasks.Move(ctx, ownerID, id, req)
}

// Delete deletes one of the owner's tasks.
func (s *TaskService) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	return s.tasks.Delete(ctx, ownerID, id)
}
