// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

import (
	"errors"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and token claims.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool { return r == RoleAdmin || r == RoleUser }

// Identity is the verified principal extracted from a third-party sign-in
// credential. Adapters map provider-specific claims into this shape.
type Identity struct {
	Email   string
	Name    string
	Picture string
}

// AuthContext is the resolved result of validating a session credential.
// It is attached to the request context by the session guard and consumed
// by downstream handlers; it carries no secrets.
type AuthContext struct {
	UserID    string
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

// IsAdmin returns true if the authenticated principal has the admin role.
func (a AuthContext) IsAdmin() bool { return a.Role == RoleAdmin }

// Sentinel errors for the authentication core. Handlers map these to HTTP
// statuses; the messages deliberately carry no detail about why a credential
// or token was rejected.
var (
	// ErrInvalidCredential covers every third-party credential failure:
	// bad signature, wrong audience, expired, malformed.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrAccountDisabled is returned when a valid identity maps to a
	// deactivated account.
	ErrAccountDisabled = errors.New("account disabled")

	// ErrUnauthenticated covers every session token failure: missing,
	// malformed, bad signature, expired, revoked.
	ErrUnauthenticated = errors.New("unauthenticated")
)
