//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxProjectNameLen = 120
	maxDescriptionLen = 2000
)

// Project groups tasks under a single owner. Access is owner-scoped: other
// users' projects behave as if they do not exist.
type Project struct {
	ID          string    `json:"id"          db:"id"`
	OwnerID     string    `json:"owner_id"    db:"owner_id"`
	Name        string    `json:"name"        db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"  db:"updated_at"`
}

// CreateProjectRequest contains fields to create a new project. The owner
// comes from the authenticated context, never from the body.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *CreateProjectRequest) Validate() error {
	if err := validateProjectName(r.Name); err != nil {
		return err
	}
	return validateDescription(r.Description)
}

// UpdateProjectRequest supports updating name and description.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateProjectRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil
}

func (r *UpdateProjectRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		if err := validateProjectName(*r.Name); err != nil {
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

// ProjectsListOptions carries optional filters for listing projects.
type ProjectsListOptions struct {
	Q      *string
	Limit  int
	Offset int
}

func validateProjectName(name string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(n) > maxProjectNameLen {
		return errors.New("name cannot exceed 120 characters")
	}
	return nil
}

func validateDescription(desc string) error {
	if utf8.RuneCountInString(desc) > maxDescriptionLen {
		return errors.New("description cannot exceed 2000 characters")
	}
	return nil
}
