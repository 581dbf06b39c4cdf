// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	"github.com/taskhive/taskhive-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityVerifier = (*MockIdentityVerifier)(nil)
	_ ports.TokenCodec       = (*StaticTokenCodec)(nil)
	_ ports.TokenDenylist    = (*MemoryTokenDenylist)(nil)
)

// MockIdentityVerifier simulates a credential verifier for tests with a
// deterministic identity.
type MockIdentityVerifier struct {
	VerifyFunc func(ctx context.Context, rawCredential string) (domainauth.Identity, error)

	// DefaultIdentity is returned for any non-empty credential when
	// VerifyFunc is unset.
	DefaultIdentity domainauth.Identity
}

// NewMockIdentityVerifier creates a MockIdentityVerifier with sensible defaults.
func NewMockIdentityVerifier() *MockIdentityVerifier {
	return &MockIdentityVerifier{
		DefaultIdentity: domainauth.Identity{
			Email:   "mock.user@example.com",
			Name:    "Mock User",
			Picture: "https://example.com/mock.png",
		},
	}
}

func (m *MockIdentityVerifier) Verify(ctx context.Context, rawCredential string) (domainauth.Identity, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, rawCredential)
	}
	if strings.TrimSpace(rawCredential) == "" {
		return domainauth.Identity{}, fmt.Errorf("%w: empty credential", domainauth.ErrInvalidCredential)
	}
	return m.DefaultIdentity, nil
}

// StaticTokenCodec mints deterministic tokens of the form "token-N" and
// decodes whatever was minted. Unknown tokens fail as unauthenticated.
type StaticTokenCodec struct {
	TTL time.Duration

	mu     sync.Mutex
	serial int
	minted map[string]domainauth.AuthContext
}

// NewStaticTokenCodec creates a StaticTokenCodec with a one-hour TTL.
func NewStaticTokenCodec() *StaticTokenCodec {
	return &StaticTokenCodec{
		TTL:    time.Hour,
		minted: make(map[string]domainauth.AuthContext),
	}
}

func (c *StaticTokenCodec) Issue(claims ports.TokenClaims) (string, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.serial++
	token := fmt.Sprintf("token-%d", c.serial)
	tokenID := fmt.Sprintf("jti-%d", c.serial)
	c.minted[token] = domainauth.AuthContext{
		UserID:    claims.UserID,
		Role:      claims.Role,
		TokenID:   tokenID,
		ExpiresAt: time.Now().Add(c.TTL),
	}
	return token, tokenID, nil
}

func (c *StaticTokenCodec) Decode(token string) (domainauth.AuthContext, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	authCtx, ok := c.minted[token]
	if !ok {
		return domainauth.AuthContext{}, fmt.Errorf("%w: unknown token", domainauth.ErrUnauthenticated)
	}
	if time.Now().After(authCtx.ExpiresAt) {
		return domainauth.AuthContext{}, fmt.Errorf("%w: token expired", domainauth.ErrUnauthenticated)
	}
	return authCtx, nil
}

// MemoryTokenDenylist is an in-memory TokenDenylist for tests.
type MemoryTokenDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time

	// Err, when set, is returned from every call to simulate an
	// unreachable backing store.
	Err error
}

// NewMemoryTokenDenylist creates an empty MemoryTokenDenylist.
func NewMemoryTokenDenylist() *MemoryTokenDenylist {
	return &MemoryTokenDenylist{revoked: make(map[string]time.Time)}
}

func (d *MemoryTokenDenylist) Revoke(_ context.Context, tokenID string, until time.Time) error {
	if d.Err != nil {
		return d.Err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[tokenID] = until
	return nil
}

func (d *MemoryTokenDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if d.Err != nil {
		return false, d.Err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	until, ok := d.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		delete(d.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
