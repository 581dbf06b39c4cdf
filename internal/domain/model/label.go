//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const maxLabelNameLen = 60

var labelColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Label is a shared tag applied to tasks. Labels are admin-managed and
// readable without authentication.
type Label struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Color     string    `json:"color"      db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateLabelRequest contains fields to create a new label.
type CreateLabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (r *CreateLabelRequest) Validate() error {
	if err := validateLabelName(r.Name); err != nil {
		return err
	}
	return validateLabelColor(r.Color)
}

// UpdateLabelRequest supports updating name and color.
type UpdateLabelRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

func (r *UpdateLabelRequest) HasUpdates() bool {
	return r.Name != nil || r.Color != nil
}

func (r *UpdateLabelRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		if err := validateLabelName(*r.Name); err != nil {
			return err
		}
	}
	if r.Color != nil {
		if err := validateLabelColor(*r.Color); err != nil {
			return err
		}
	}
	return nil
}

func validateLabelName(name string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(n) > maxLabelNameLen {
		return errors.New("name cannot exceed 60 characters")
	}
	return nil
}

func validateLabelColor(color string) error {
	c := strings.TrimSpace(color)
	if c == "" {
		return errors.New("color is required and cannot be empty")
	}
	if !labelColorRe.MatchString(c) {
		return errors.New("color must be a hex value like #ff8800")
	}
	return nil
}
