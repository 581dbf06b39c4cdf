//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxTaskTitleLen = 200

// TaskColumn is the board column a task sits in.
type TaskColumn string

const (
	TaskColumnTodo  TaskColumn = "todo"
	TaskColumnDoing TaskColumn = "doing"
	TaskColumnDone  TaskColumn = "done"
)

func (c TaskColumn) Valid() bool {
	switch c {
	case TaskColumnTodo, TaskColumnDoing, TaskColumnDone:
		return true
	default:
		return false
	}
}

// Task is a unit of work inside a project. Position orders tasks within
// their column; label IDs reference shared labels.
type Task struct {
	ID          string     `json:"id"                 db:"id"`
	ProjectID   string     `json:"project_id"         db:"project_id"`
	Title       string     `json:"title"              db:"title"`
	Description string     `json:"description"        db:"description"`
	Column      TaskColumn `json:"column"             db:"board_column"`
	Position    int        `json:"position"           db:"position"`
	LabelIDs    []string   `json:"label_ids"          db:"label_ids"`
	DueDate     *time.Time `json:"due_date,omitempty" db:"due_date"`
	CreatedAt   time.Time  `json:"created_at"         db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"         db:"updated_at"`
}

// CreateTaskRequest contains fields to create a task. The project comes from
// the URL path; column defaults to todo when omitted.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Column      TaskColumn `json:"column,omitempty"`
	LabelIDs    []string   `json:"label_ids,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	if err := validateTaskTitle(r.Title); err != nil {
		return err
	}
	if r.Column != "" && !r.Column.Valid() {
		return errors.New("column must be one of: todo, doing, done")
	}
	return validateDescription(r.Description)
}

// UpdateTaskRequest supports updating task fields other than placement.
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	LabelIDs    *[]string  `json:"label_ids,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ClearDue    bool       `json:"clear_due_date,omitempty"`
}

func (r *UpdateTaskRequest) HasUpdates() bool {
	return r.Title != nil || r.Description != nil || r.LabelIDs != nil ||
		r.DueDate != nil || r.ClearDue
}

func (r *UpdateTaskRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Title != nil {
		if err := validateTaskTitle(*r.Title); err != nil {
			return err
		}
	}
	if r.Description != nil {
		if err := validateDescription(*r.Description); err != nil {
			return err
		}
	}
	return nil
}

// MoveTaskRequest places a task in a column at a position.
type MoveTaskRequest struct {
	Column   TaskColumn `json:"column"`
	Position int        `json:"position"`
}

func (r *MoveTaskRequest) Validate() error {
	if !r.Column.Valid() {
		return errors.New("column must be one of: todo, doing, done")
	}
	if r.Position < 0 {
		return errors.New("position must be non-negative")
	}
	return nil
}

func validateTaskTitle(title string) error {
	t := strings.TrimSpace(title)
	if t == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(t) > maxTaskTitleLen {
		return errors.New("title cannot exceed 200 characters")
	}
	return nil
}
