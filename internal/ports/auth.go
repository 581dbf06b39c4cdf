// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.
package ports

import (
	"context"
	"time"

	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
)

// IdentityVerifier validates a third-party-issued sign-in credential and
// extracts the verified identity claim. Validation is pure: no side effects.
// Every failure is reported as domainauth.ErrInvalidCredential (wrapped).
type IdentityVerifier interface {
	Verify(ctx context.Context, rawCredential string) (domainauth.Identity, error)
}

// TokenClaims carries the values embedded in a minted session credential.
type TokenClaims struct {
	UserID string
	Role   domainauth.Role
}

// TokenCodec mints and validates stateless session credentials. Validity is
// proven solely by signature and expiry; no server-side store is consulted.
type TokenCodec interface {
	// Issue mints a signed token embedding the claims plus issued-at and
	// expiry, and returns the token with its unique token ID.
	Issue(claims TokenClaims) (token string, tokenID string, err error)

	// Decode validates signature, expiry, and structure, returning the
	// resolved auth context. Every failure is domainauth.ErrUnauthenticated.
	Decode(token string) (domainauth.AuthContext, error)
}

// TokenDenylist records revoked token IDs until their natural expiry.
// It backs explicit logout when configured; the zero deployment runs without
// one and logout stays client-local.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
