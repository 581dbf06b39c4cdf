// Package devauth provides a config-driven IdentityVerifier for local
// development. It skips real credential verification and returns a fixed
// identity, so the sign-in flow works without Google connectivity.
package devauth

import (
	"context"
	"errors"
	"fmt"

	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
)

// Config controls the dev verifier identity.
type Config struct {
	Email   string
	Name    string
	Picture string
}

// Verifier implements ports.IdentityVerifier for local development.
// Any non-empty credential verifies to the configured identity; empty
// credentials still fail so the sign-in handler's error path stays testable.
type Verifier struct {
	identity domainauth.Identity
}

// NewVerifier constructs a dev verifier from Config.
func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}
	name := cfg.Name
	if name == "" {
		name = cfg.Email
	}
	return &Verifier{
		identity: domainauth.Identity{
			Email:   cfg.Email,
			Name:    name,
			Picture: cfg.Picture,
		},
	}, nil
}

// Verify returns the configured identity for any non-empty credential.
func (v *Verifier) Verify(_ context.Context, rawCredential string) (domainauth.Identity, error) {
	if rawCredential == "" {
		return domainauth.Identity{}, fmt.Errorf("%w: empty credential", domainauth.ErrInvalidCredential)
	}
	return v.identity, nil
}
