package testutil

import (
	"time"

	"github.com/taskhive/taskhive-api/internal/domain/model"
)

// UserRequestBuilder provides a fluent interface for building CreateUserRequest objects for testing.
type UserRequestBuilder struct {
	req *model.CreateUserRequest
}

// NewUserRequest creates a new UserRequestBuilder with sensible defaults.
func NewUserRequest() *UserRequestBuilder {
	return &UserRequestBuilder{
		req: &model.CreateUserRequest{
			Email: "ada@example.com",
			Name:  "Ada Lovelace",
		},
	}
}

// WithEmail sets the email.
func (b *UserRequestBuilder) WithEmail(email string) *UserRequestBuilder {
	b.req.Email = email
	return b
}

// WithName sets the display name.
func (b *UserRequestBuilder) WithName(name string) *UserRequestBuilder {
	b.req.Name = name
	return b
}

// WithPicture sets the avatar URL.
func (b *UserRequestBuilder) WithPicture(picture string) *UserRequestBuilder {
	b.req.Picture = &picture
	return b
}

// Build returns the constructed request.
func (b *UserRequestBuilder) Build() *model.CreateUserRequest {
	return b.req
}

// LabelRequestBuilder provides a fluent interface for building CreateLabelRequest objects for testing.
type LabelRequestBuilder struct {
	req *model.CreateLabelRequest
}

// NewLabelRequest creates a new LabelRequestBuilder with sensible defaults.
func NewLabelRequest() *LabelRequestBuilder {
	return &LabelRequestBuilder{
		req: &model.CreateLabelRequest{
			Name:  "bug",
			Color: "#ff0000",
		},
	}
}

// WithName sets the label name.
func (b *LabelRequestBuilder) WithName(name string) *LabelRequestBuilder {
	b.req.Name = name
	return b
}

// WithColor sets the label color.
func (b *LabelRequestBuilder) WithColor(color string) *LabelRequestBuilder {
	b.req.Color = color
	return b
}

// Build returns the constructed request.
func (b *LabelRequestBuilder) Build() *model.CreateLabelRequest {
	return b.req
}

// ProjectRequestBuilder provides a fluent interface for building CreateProjectRequest objects for testing.
type ProjectRequestBuilder struct {
	req *model.CreateProjectRequest
}

// NewProjectRequest creates a new ProjectRequestBuilder with sensible defaults.
func NewProjectRequest() *ProjectRequestBuilder {
	return &ProjectRequestBuilder{
		req: &model.CreateProjectRequest{
			Name: "My Project",
		},
	}
}

// WithName sets the project name.
func (b *ProjectRequestBuilder) WithName(name string) *ProjectRequestBuilder {
	b.req.Name = name
	return b
}

// WithDescription sets the project description.
func (b *ProjectRequestBuilder) WithDescription(desc string) *ProjectRequestBuilder {
	b.req.Description = desc
	return b
}

// Build returns the constructed request.
func (b *ProjectRequestBuilder) Build() *model.CreateProjectRequest {
	return b.req
}

// TaskRequestBuilder provides a fluent interface for building CreateTaskRequest objects for testing.
type TaskRequestBuilder struct {
	req *model.CreateTaskRequest
}

// NewTaskRequest creates a new TaskRequestBuilder with sensible defaults.
func NewTaskRequest() *TaskRequestBuilder {
	return &TaskRequestBuilder{
		req: &model.CreateTaskRequest{
			Title:  "Do the thing",
			Column: model.TaskColumnTodo,
		},
	}
}

// WithTitle sets the title.
func (b *TaskRequestBuilder) WithTitle(title string) *TaskRequestBuilder {
	b.req.Title = title
	return b
}

// WithDescription sets the description.
func (b *TaskRequestBuilder) WithDescription(desc string) *TaskRequestBuilder {
	b.req.Description = desc
	return b
}

// WithColumn sets the board column.
func (b *TaskRequestBuilder) WithColumn(column model.TaskColumn) *TaskRequestBuilder {
	b.req.Column = column
	return b
}

// WithLabelIDs sets the label IDs.
func (b *TaskRequestBuilder) WithLabelIDs(ids ...string) *TaskRequestBuilder {
	b.req.LabelIDs = ids
	return b
}

// WithDueDate sets the due date.
func (b *TaskRequestBuilder) WithDueDate(due time.Time) *TaskRequestBuilder {
	b.req.DueDate = &due
	return b
}

// Build returns the constructed request.
func (b *TaskRequestBuilder) Build() *model.CreateTaskRequest {
	return b.req
}
