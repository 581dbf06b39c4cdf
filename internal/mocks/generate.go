// Package mocks provides mock implementations for testing the taskhive API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockUserRepository(ctrl)
//	mockRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
package mocks

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// Create, GetByID, GetByEmail, UpdateProfile, SetRole, SetActive, List
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/taskhive/taskhive-api/internal/core UserRepository

// Generate mock for LoginHistoryRepository interface from internal/core package.
// This creates MockLoginHistoryRepository with methods for all LoginHistoryRepository interface methods:
// Append, ListByUser, CountByUser
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=login_history_repository_mock.go github.com/taskhive/taskhive-api/internal/core LoginHistoryRepository

// Generate mock for LabelRepository interface from internal/core package.
// This creates MockLabelRepository with methods for all LabelRepository interface methods:
// Create, GetByID, List, Update, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=label_repository_mock.go github.com/taskhive/taskhive-api/internal/core LabelRepository

// Generate mock for ProjectRepository interface from internal/core package.
// This creates MockProjectRepository with methods for all ProjectRepository interface methods:
// Create, GetByID, List, Update, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=project_repository_mock.go github.com/taskhive/taskhive-api/internal/core ProjectRepository

// Generate mock for TaskRepository interface from internal/core package.
// This creates MockTaskRepository with methods for all TaskRepository interface methods:
// Create, GetByID, ListByProject, Update, Move, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=task_repository_mock.go github.com/taskhive/taskhive-api/internal/core TaskRepository
