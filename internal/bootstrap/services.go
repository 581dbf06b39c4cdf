package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/taskhive/taskhive-api/config"
	"github.com/taskhive/taskhive-api/internal/data"
	"github.com/taskhive/taskhive-api/internal/service"
)

// ServiceContainer holds all initialized services.
type ServiceContainer struct {
	Auth     *service.AuthService
	Users    *service.UserService
	Labels   *service.LabelService
	Projects *service.ProjectService
	Tasks    *service.TaskService
}

// ServiceDeps contains the shared dependencies services are built from.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories holds the data layer repositories shared across services.
type serviceRepositories struct {
	users    *data.UserRepo
	history  *data.LoginHistoryRepo
	labels   *data.LabelRepo
	projects *data.ProjectRepo
	tasks    *data.TaskRepo
}

func buildRepositories(db *sql.DB) *serviceRepositories {
	return &serviceRepositories{
		users:    data.NewUserRepo(db),
		history:  data.NewLoginHistoryRepo(db),
		labels:   data.NewLabelRepo(db),
		projects: data.NewProjectRepo(db),
		tasks:    data.NewTaskRepo(db),
	}
}

// NewServices creates all services with their dependencies wired.
func NewServices(ctx context.Context, deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil || deps.DB == nil {
		return ServiceContainer{}, errors.New("service deps require config and database")
	}

	repos := buildRepositories(deps.DB)

	auth, err := BuildAuthService(ctx, AuthConfig{
		Auth: deps.Config.Auth,
		Repos: service.AuthRepos{
			Users:   repos.users,
			History: repos.history,
		},
		RedisClient: deps.RedisClient,
		Logger:      deps.Logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build auth service: %w", err)
	}

	return ServiceContainer{
		Auth: auth,
		Users: service.NewUserService(service.UserServiceOptions{
			Users:   repos.users,
			History: repos.history,
		}),
		Labels: service.NewLabelService(service.LabelServiceOptions{
			Labels: repos.labels,
		}),
		Projects: service.NewProjectService(service.ProjectServiceOptions{
			Projects: repos.projects,
		}),
		Tasks: service.NewTaskService(service.TaskServiceOptions{
			Tasks:    repos.tasks,
			Projects: repos.projects,
		}),
	}, nil
}
