// Package devseed populates a development database with a known admin
// user, a starter label catalog, and a sample project board.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskhive/taskhive-api/internal/data"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"github.com/taskhive/taskhive-api/internal/service"
)

// DevAdminEmail is the email of the seeded development admin account.
const DevAdminEmail = "dev@example.com"

// Services bundles the services the seeder drives.
type Services struct {
	Users    *data.UserRepo
	Labels   *service.LabelService
	Projects *service.ProjectService
	Tasks    *service.TaskService
}

// NewServices builds the seed services over the given database.
func NewServices(db *sql.DB) Services {
	users := data.NewUserRepo(db)
	projects := data.NewProjectRepo(db)
	return Services{
		Users: users,
		Labels: service.NewLabelService(service.LabelServiceOptions{
			Labels: data.NewLabelRepo(db),
		}),
		Projects: service.NewProjectService(service.ProjectServiceOptions{
			Projects: projects,
		}),
		Tasks: service.NewTaskService(service.TaskServiceOptions{
			Tasks:    data.NewTaskRepo(db),
			Projects: projects,
		}),
	}
}

// Run seeds development data. It is idempotent: existing records are
// left untouched and only missing ones are created.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	admin, err := seedAdminUser(ctx, svcs.Users, logger)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	created := seedLabels(ctx, svcs.Labels, logger)
	logger.InfoContext(ctx, "label seed complete", "created", created)

	if err := seedSampleProject(ctx, svcs, admin.ID, logger); err != nil {
		return fmt.Errorf("seed sample project: %w", err)
	}

	return nil
}

func seedAdminUser(ctx context.Context, users *data.UserRepo, logger *slog.Logger) (*model.User, error) {
	existing, err := users.GetByEmail(ctx, DevAdminEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, data.ErrUserNotFound) {
		return nil, err
	}

	created, err := users.Create(ctx, &model.CreateUserRequest{
		Email: DevAdminEmail,
		Name:  "Dev Admin",
	})
	if err != nil {
		return nil, err
	}

	promoted, err := users.SetRole(ctx, created.ID, "admin")
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "seeded dev admin user", "email", DevAdminEmail, "id", promoted.ID)
	return promoted, nil
}

func defaultLabels() []*model.CreateLabelRequest {
	return []*model.CreateLabelRequest{
		{Name: "bug", Color: "#d73a4a"},
		{Name: "feature", Color: "#0e8a16"},
		{Name: "chore", Color: "#cfd3d7"},
		{Name: "urgent", Color: "#b60205"},
	}
}

func seedLabels(ctx context.Context, svc *service.LabelService, logger *slog.Logger) int {
	created := 0
	for _, req := range defaultLabels() {
		if _, err := svc.Create(ctx, req); err != nil {
			if errors.Is(err, data.ErrLabelNameExists) {
				continue
			}
			logger.WarnContext(ctx, "seed label failed", "name", req.Name, "error", err)
			continue
		}
		created++
	}
	return created
}

const sampleProjectName = "Getting started"

func seedSampleProject(ctx context.Context, svcs Services, ownerID string, logger *slog.Logger) error {
	q := sampleProjectName
	existing, err := svcs.Projects.List(ctx, ownerID, model.ProjectsListOptions{Q: &q})
	if err != nil {
		return err
	}
	for _, p := range existing {
		if p.Name == sampleProjectName {
			return nil
		}
	}

	project, err := svcs.Projects.Create(ctx, ownerID, &model.CreateProjectRequest{
		Name:        sampleProjectName,
		Description: "A sample board showing tasks in each column.",
	})
	if err != nil {
		return err
	}

	tasks := []*model.CreateTaskRequest{
		{Title: "Invite your team", Column: model.TaskColumnTodo},
		{Title: "Create your first label", Column: model.TaskColumnTodo},
		{Title: "Drag a task to another column", Column: model.TaskColumnDoing},
		{Title: "Sign in with Google", Column: model.TaskColumnDone},
	}
	for _, req := range tasks {
		if _, err := svcs.Tasks.Create(ctx, ownerID, project.ID, req); err != nil {
			logger.WarnContext(ctx, "seed task failed", "title", req.Title, "error", err)
		}
	}

	logger.InfoContext(ctx, "seeded sample project", "project_id", project.ID)
	return nil
}
