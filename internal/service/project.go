package service

import (
	"context"

	"github.com/taskhive/taskhive-api/internal/core"
	"github.com/taskhive/taskhive-api/internal/domain/model"
)

// ProjectServiceOptions groups dependencies for ProjectService.
type ProjectServiceOptions struct {
	Projects core.ProjectRepository
}

// ProjectService serves owner-scoped project CRUD. The owner always comes
// from the authenticated context, never from client input.
type ProjectService struct {
	projects core.ProjectRepository
}

// NewProjectService constructs a new ProjectService.
func NewProjectService(opts ProjectServiceOptions) *ProjectService {
	if opts.Projects == nil {
		panic("project service requires a project repository")
	}
	return &ProjectService{projects: opts.Projects}
}

// Create creates a project for the owner.
func (s *ProjectService) Create(
	ctx context.Context,
	ownerID string,
	req *model.CreateProjectRequest,
) (*model.Project, error) {
	return s.projects.Create(ctx, ownerID, req)
}

// GetByID retrieves one of the owner's projects.
func (s *ProjectService) GetByID(ctx context.Context, ownerID, id string) (*model.Project, error) {
	return s.projects.GetByID(ctx, ownerID, id)
}

// List returns the owner's projects with optional filters.
func (s *ProjectService) List(
	ctx context.Context,
	ownerID string,
	opts model.ProjectsListOptions,
) ([]*model.Project, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return s.projects.List(ctx, ownerID, opts)
}

// Update updates one of the owner's projects.
func (s *ProjectService) Update(
	ctx context.Context,
	ownerID, id string,
	req model.UpdateProjectRequest,
) (*model.Project, error) {
	return s.projects.Update(ctx, ownerID, id, req)
}

// Delete deletes one of the owner's projects along with its tasks.
func (s *ProjectService) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	return s.projects.Delete(ctx, ownerID, id)
}
