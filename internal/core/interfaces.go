package core

import (
	"context"

	"github.com/taskhive/taskhive-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// UserRepository defines the interface for user data operations.
// Create relies on the store's unique constraint on email: concurrent
// first sign-ins race on it and the loser sees a conflict error.
type UserRepository interface {
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id string, req model.UpdateProfileRequest) (*model.User, error)
	SetRole(ctx context.Context, id string, role string) (*model.User, error)
	SetActive(ctx context.Context, id string, active bool) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
}

// AppendLoginParams groups parameters for LoginHistoryRepository.Append.
type AppendLoginParams struct {
	UserID    string
	IPAddress string
	UserAgent string
}

// LoginHistoryRepository defines the interface for the append-only login log.
type LoginHistoryRepository interface {
	Append(ctx context.Context, params AppendLoginParams) (*model.LoginHistoryEntry, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.LoginHistoryEntry, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// LabelRepository defines the interface for label data operations.
type LabelRepository interface {
	Create(ctx context.Context, req *model.CreateLabelRequest) (*model.Label, error)
	GetByID(ctx context.Context, id string) (*model.Label, error)
	List(ctx context.Context, limit, offset int) ([]*model.Label, error)
	Update(ctx context.Context, id string, req model.UpdateLabelRequest) (*model.Label, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProjectRepository defines the interface for project data operations.
// All reads and writes are owner-scoped: methods taking an ownerID treat
// another user's project as not found.
type ProjectRepository interface {
	Create(ctx context.Context, ownerID string, req *model.CreateProjectRequest) (*model.Project, error)
	GetByID(ctx context.Context, ownerID, id string) (*model.Project, error)
	List(ctx context.Context, ownerID string, opts model.ProjectsListOptions) ([]*model.Project, error)
	Update(ctx context.Context, ownerID, id string, req model.UpdateProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}

// TaskRepository defines the interface for task data operations. Ownership is
// enforced through the owning project.
type TaskRepository interface {
	Create(ctx context.Context, projectID string, req *model.CreateTaskRequest) (*model.Task, error)
	GetByID(ctx context.Context, ownerID, id string) (*model.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*model.Task, error)
	Update(ctx context.Context, ownerID, id string, req model.UpdateTaskRequest) (*model.Task, error)
	Move(ctx context.Context, ownerID, id string, req model.MoveTaskRequest) (*model.Task, error)
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}
