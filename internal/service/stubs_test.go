package service

import (
	"context"

	"github.com/taskhive/taskhive-api/internal/core"
	"github.com/taskhive/taskhive-api/internal/data"
	"github.com/taskhive/taskhive-api/internal/domain/model"
)

// Func-based repository stubs for unit tests. Unset funcs return the zero
// behavior noted on each method.

var (
	_ core.UserRepository         = (*stubUserRepo)(nil)
	_ core.LoginHistoryRepository = (*stubHistoryRepo)(nil)
	_ core.ProjectRepository      = (*stubProjectRepo)(nil)
	_ core.TaskRepository         = (*stubTaskRepo)(nil)
)

type stubUserRepo struct {
	createFunc        func(context.Context, *model.CreateUserRequest) (*model.User, error)
	getByIDFunc       func(context.Context, string) (*model.User, error)
	getByEmailFunc    func(context.Context, string) (*model.User, error)
	updateProfileFunc func(context.Context, string, model.UpdateProfileRequest) (*model.User, error)
	setRoleFunc       func(context.Context, string, string) (*model.User, error)
	setActiveFunc     func(context.Context, string, bool) (*model.User, error)
	listFunc          func(context.Context, int, int) ([]*model.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, req)
	}
	return nil, data.ErrEmailExists
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.getByIDFunc != nil {
		return s.getByIDFunc(ctx, id)
	}
	return nil, data.ErrUserNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.getByEmailFunc != nil {
		return s.getByEmailFunc(ctx, email)
	}
	return nil, data.ErrUserNotFound
}

func (s *stubUserRepo) UpdateProfile(
	ctx context.Context,
	id string,
	req model.UpdateProfileRequest,
) (*model.User, error) {
	if s.updateProfileFunc != nil {
		return s.updateProfileFunc(ctx, id, req)
	}
	return nil, data.ErrUserNotFound
}

func (s *stubUserRepo) SetRole(ctx context.Context, id, role string) (*model.User, error) {
	if s.setRoleFunc != nil {
		return s.setRoleFunc(ctx, id, role)
	}
	return nil, data.ErrUserNotFound
}

func (s *stubUserRepo) SetActive(ctx context.Context, id string, active bool) (*model.User, error) {
	if s.setActiveFunc != nil {
		return s.setActiveFunc(ctx, id, active)
	}
	return nil, data.ErrUserNotFound
}

func (s *stubUserRepo) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, limit, offset)
	}
	return nil, nil
}

type stubHistoryRepo struct {
	appendFunc func(context.Context, core.AppendLoginParams) (*model.LoginHistoryEntry, error)
	listFunc   func(context.Context, string, int, int) ([]*model.LoginHistoryEntry, error)
	countFunc  func(context.Context, string) (int64, error)
}

func (s *stubHistoryRepo) Append(
	ctx context.Context,
	params core.AppendLoginParams,
) (*model.LoginHistoryEntry, error) {
	if s.appendFunc != nil {
		return s.appendFunc(ctx, params)
	}
	return &model.LoginHistoryEntry{ID: "hist-1", UserID: params.UserID}, nil
}

func (s *stubHistoryRepo) ListByUser(
	ctx context.Context,
	userID string,
	limit, offset int,
) ([]*model.LoginHistoryEntry, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (s *stubHistoryRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	if s.countFunc != nil {
		return s.countFunc(ctx, userID)
	}
	return 0, nil
}

type stubProjectRepo struct {
	createFunc func(context.Context, string, *model.CreateProjectRequest) (*model.Project, error)
	getFunc    func(context.Context, string, string) (*model.Project, error)
	listFunc   func(context.Context, string, model.ProjectsListOptions) ([]*model.Project, error)
	updateFunc func(context.Context, string, string, model.UpdateProjectRequest) (*model.Project, error)
	deleteFunc func(context.Context, string, string) (bool, error)
}

func (s *stubProjectRepo) Create(
	ctx context.Context,
	ownerID string,
	req *model.CreateProjectRequest,
) (*model.Project, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, ownerID, req)
	}
	return &model.Project{ID: "proj-1", OwnerID: ownerID, Name: req.Name}, nil
}

func (s *stubProjectRepo) GetByID(ctx context.Context, ownerID, id string) (*model.Project, error) {
	if s.getFunc != nil {
		return s.getFunc(ctx, ownerID, id)
	}
	return nil, data.ErrProjectNotFound
}

func (s *stubProjectRepo) List(
	ctx context.Context,
	ownerID string,
	opts model.ProjectsListOptions,
) ([]*model.Project, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, ownerID, opts)
	}
	return nil, nil
}

func (s *stubProjectRepo) Update(
	ctx context.Context,
	ownerID, id string,
	req model.UpdateProjectRequest,
) (*model.Project, error) {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, ownerID, id, req)
	}
	return nil, data.ErrProjectNotFound
}

func (s *stubProjectRepo) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, ownerID, id)
	}
	return false, nil
}

type stubTaskRepo struct {
	createFunc func(context.Context, string, *model.CreateTaskRequest) (*model.Task, error)
	getFunc    func(context.Context, string, string) (*model.Task, error)
	listFunc   func(context.Context, string) ([]*model.Task, error)
	updateFunc func(context.Context, string, string, model.UpdateTaskRequest) (*model.Task, error)
	moveFunc   func(context.Context, string, string, model.MoveTaskRequest) (*model.Task, error)
	deleteFunc func(context.Context, string, string) (bool, error)
}

func (s *stubTaskRepo) Create(
	ctx context.Context,
	projectID string,
	req *model.CreateTaskRequest,
) (*model.Task, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, projectID, req)
	}
	return &model.Task{ID: "task-1", ProjectID: projectID, Title: req.Title}, nil
}

func (s *stubTaskRepo) GetByID(ctx context.Context, ownerID, id string) (*model.Task, error) {
	if s.getFunc != nil {
		return s.getFunc(ctx, ownerID, id)
	}
	return nil, data.ErrTaskNotFound
}

func (s *stubTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*model.Task, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, projectID)
	}
	return nil, nil
}

func (s *stubTaskRepo) Update(
	ctx context.Context,
	ownerID, id string,
	req model.UpdateTaskRequest,
) (*model.Task, error) {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, ownerID, id, req)
	}
	return nil, data.ErrTaskNotFound
}

func (s *stubTaskRepo) Move(
	ctx context.Context,
	ownerID, id string,
	req model.MoveTaskRequest,
) (*model.Task, error) {
	if s.moveFunc != nil {
		return s.moveFunc(ctx, ownerID, id, req)
	}
	return nil, data.ErrTaskNotFound
}

func (s *stubTaskRepo) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, ownerID, id)
	}
	return false, nil
}
