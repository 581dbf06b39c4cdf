//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
)

const maxUserNameLen = 120

// User is a local account created on first sign-in. Email is the external
// identity key: exactly one User row exists per email. Role defaults to
// "user" at creation and is never set from client input.
type User struct {
	ID        string          `json:"id"                db:"id"`
	Email     string          `json:"email"             db:"email"`
	Name      string          `json:"name"              db:"name"`
	Picture   *string         `json:"picture,omitempty" db:"picture"`
	Role      domainauth.Role `json:"role"              db:"role"`
	IsActive  bool            `json:"is_active"         db:"is_active"`
	CreatedAt time.Time       `json:"created_at"        db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"        db:"updated_at"`
}

// CreateUserRequest contains fields to create a user from a verified identity.
// Role and active flag are intentionally absent: they take server-side
// defaults and are managed through the admin CLI only.
type CreateUserRequest struct {
	Email   string
	Name    string
	Picture *string
}

func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required and cannot be empty")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("email must contain @")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Name) > maxUserNameLen {
		return errors.New("name cannot exceed 120 characters")
	}
	return validatePicture(r.Picture)
}

// UpdateProfileRequest supports the self-service profile update. Only name
// and picture are client-settable; email, role, and active flag are not.
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Picture *string `json:"picture,omitempty"`
}

func (r *UpdateProfileRequest) HasUpdates() bool {
	return r.Name != nil || r.Picture != nil
}

func (r *UpdateProfileRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(*r.Name) > maxUserNameLen {
			return errors.New("name cannot exceed 120 characters")
		}
	}
	return validatePicture(r.Picture)
}

func validatePicture(picture *string) error {
	if picture == nil || strings.TrimSpace(*picture) == "" {
		return nil
	}
	u, err := url.Parse(*picture)
	if err != nil || u.Host == "" {
		return errors.New("picture must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("picture must use http or https scheme")
	}
	return nil
}
