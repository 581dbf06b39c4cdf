// Package sessiontoken mints and validates the stateless session credential.
// Tokens are HS256 JWTs signed with a server-held secret injected at startup;
// validity is proven solely by signature and expiry, no store lookup.
package sessiontoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	"github.com/taskhive/taskhive-api/internal/ports"
)

// DefaultTTL is the session lifetime when none is configured.
const DefaultTTL = 24 * time.Hour

// sessionClaims embeds the registered claim set plus the application role.
// UserID rides in the standard Subject claim; ID is the per-token JTI used
// by the optional revocation denylist.
type sessionClaims struct {
	jwt.RegisteredClaims
	Role domainauth.Role `json:"role"`
}

// Codec signs and verifies session tokens with a shared secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Config holds configuration for the session token codec.
type Config struct {
	Secret []byte
	TTL    time.Duration

	// Now overrides the clock, for tests. Optional.
	Now func() time.Time
}

// NewCodec constructs a Codec. The secret must be non-empty; there is no
// insecure default.
func NewCodec(cfg Config) (*Codec, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("session token secret is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Codec{secret: cfg.Secret, ttl: ttl, now: now}, nil
}

// Issue mints a signed token for the given claims and returns it with its
// token ID.
func (c *Codec) Issue(claims ports.TokenClaims) (string, string, error) {
	if claims.UserID == "" {
		return "", "", errors.New("user ID is required")
	}
	if !claims.Role.Valid() {
		return "", "", fmt.Errorf("invalid role %q", claims.Role)
	}

	now := c.now().UTC()
	tokenID := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Role: claims.Role,
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign token: %w", err)
	}
	return signed, tokenID, nil
}

// Decode validates the token and returns the auth context it carries.
// Signature, expiry, and structural failures all collapse into
// ErrUnauthenticated so clients cannot probe which check failed.
func (c *Codec) Decode(token string) (domainauth.AuthContext, error) {
	claims := &sessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return domainauth.AuthContext{}, fmt.Errorf("%w: %w", domainauth.ErrUnauthenticated, err)
	}
	if !parsed.Valid || claims.Subject == "" || !claims.Role.Valid() {
		return domainauth.AuthContext{}, domainauth.ErrUnauthenticated
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return domainauth.AuthContext{
		UserID:    claims.Subject,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: expiresAt,
	}, nil
}
